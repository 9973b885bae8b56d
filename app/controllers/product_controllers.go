package controllers

import (
	"context"
	"errors"

	"github.com/shashiranjanraj/kashvi-shop/app/repositories"
	"github.com/shashiranjanraj/kashvi-shop/app/services"
)

// ProductController is the administrator's catalog management.
type ProductController struct {
	Deps
	service *services.ProductService
}

func NewProductController(deps Deps, service *services.ProductService) *ProductController {
	return &ProductController{Deps: deps, service: service}
}

func (c *ProductController) List(context.Context) error {
	products := c.service.List()
	if len(products) == 0 {
		c.Console.Println("No products")
		return nil
	}
	for _, p := range products {
		c.Console.Println(p.String())
	}
	return nil
}

func (c *ProductController) Add(ctx context.Context) error {
	name, err := c.Console.ReadLine("Enter product name: ")
	if err != nil {
		return err
	}
	price, err := c.Console.ReadPrice("Enter product price: ")
	if err != nil {
		return err
	}

	c.service.Add(ctx, name, price)
	c.Console.Println("Product added")
	return nil
}

// Edit asks for the new name and price only after the current name matches.
func (c *ProductController) Edit(ctx context.Context) error {
	name, err := c.Console.ReadLine("Enter the product name to edit: ")
	if err != nil {
		return err
	}
	if !c.service.Exists(name) {
		c.Console.Println("Product not found")
		return nil
	}

	newName, err := c.Console.ReadLine("Enter new product name: ")
	if err != nil {
		return err
	}
	newPrice, err := c.Console.ReadPrice("Enter new product price: ")
	if err != nil {
		return err
	}

	if err := c.service.Edit(ctx, name, newName, newPrice); err != nil {
		return c.notFound(err)
	}
	c.Console.Println("Product updated")
	return nil
}

func (c *ProductController) Delete(ctx context.Context) error {
	name, err := c.Console.ReadLine("Enter the product name to delete: ")
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx, name); err != nil {
		return c.notFound(err)
	}
	c.Console.Println("Product deleted")
	return nil
}

func (c *ProductController) Query(context.Context) error {
	name, err := c.Console.ReadLine("Enter the product name to look up: ")
	if err != nil {
		return err
	}

	p, err := c.service.Query(name)
	if err != nil {
		return c.notFound(err)
	}
	c.Console.Println("Product exists: " + p.String())
	return nil
}

func (c *ProductController) notFound(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		c.Console.Println("Product not found")
		return nil
	}
	return err
}
