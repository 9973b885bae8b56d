package features

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/shashiranjanraj/kashvi-shop/app/models"
	"github.com/shashiranjanraj/kashvi-shop/app/repositories"
	"github.com/shashiranjanraj/kashvi-shop/app/services"
	"github.com/shashiranjanraj/kashvi-shop/database/seeders"
	"github.com/shashiranjanraj/kashvi-shop/pkg/event"
	"github.com/shashiranjanraj/kashvi-shop/pkg/session"
)

type shopTestContext struct {
	store     *repositories.Store
	session   *session.Session
	auth      *services.AuthService
	customers *services.CustomerService
	products  *services.ProductService
	cart      *services.CartService
	err       error
}

func (c *shopTestContext) reset() {
	*c = shopTestContext{}
}

func (c *shopTestContext) aFreshlySeededShop() error {
	c.store = repositories.NewStore()
	if err := seeders.RunAll(c.store); err != nil {
		return err
	}
	bus := event.NewBus()
	c.session = session.New()
	c.auth = services.NewAuthService(c.store, bus)
	c.customers = services.NewCustomerService(c.store, bus)
	c.products = services.NewProductService(c.store, bus)
	c.cart = services.NewCartService(bus)
	return nil
}

func (c *shopTestContext) aRegisteredCustomer(username, password string) error {
	return c.auth.Register(context.Background(), username, password)
}

func (c *shopTestContext) iRegister(username, password string) error {
	c.err = c.auth.Register(context.Background(), username, password)
	return nil
}

func (c *shopTestContext) iLogIn(username, password string) error {
	account, err := c.auth.Login(context.Background(), username, password)
	c.err = err
	if err != nil {
		return nil
	}
	return c.session.Login(account)
}

func (c *shopTestContext) iLogOut() error {
	c.auth.Logout(context.Background(), c.session.Account())
	c.session.Logout()
	return nil
}

func (c *shopTestContext) theSessionIs(state string) error {
	if got := c.session.State().String(); got != state {
		return fmt.Errorf("expected session %q, got %q", state, got)
	}
	return nil
}

func (c *shopTestContext) theCustomersAre(list string) error {
	return equalLists(list, c.customers.List())
}

func (c *shopTestContext) failedWith(target error) func() error {
	return func() error {
		if !errors.Is(c.err, target) {
			return fmt.Errorf("expected %v, got %v", target, c.err)
		}
		return nil
	}
}

func (c *shopTestContext) customer(username string) (*models.Customer, error) {
	return c.store.Customers.Find(username)
}

func (c *shopTestContext) addsToCart(username, item string) error {
	cu, err := c.customer(username)
	if err != nil {
		return err
	}
	c.cart.Add(context.Background(), cu, item)
	return nil
}

func (c *shopTestContext) removesFromCart(username, item string) error {
	cu, err := c.customer(username)
	if err != nil {
		return err
	}
	c.cart.Remove(context.Background(), cu, item)
	return nil
}

func (c *shopTestContext) checksOut(username string) error {
	cu, err := c.customer(username)
	if err != nil {
		return err
	}
	c.cart.Checkout(context.Background(), cu)
	return nil
}

func (c *shopTestContext) theCartIs(username, list string) error {
	cu, err := c.customer(username)
	if err != nil {
		return err
	}
	return equalLists(list, c.cart.Cart(cu))
}

func (c *shopTestContext) theCartIsEmpty(username string) error {
	return c.theCartIs(username, "")
}

func (c *shopTestContext) theHistoryIs(username, list string) error {
	cu, err := c.customer(username)
	if err != nil {
		return err
	}
	return equalLists(list, c.cart.History(cu))
}

func (c *shopTestContext) theHistoryIsEmpty(username string) error {
	return c.theHistoryIs(username, "")
}

func (c *shopTestContext) iAddProduct(name string, price float64) error {
	c.products.Add(context.Background(), name, price)
	return nil
}

func (c *shopTestContext) iEditProduct(name, newName string, price float64) error {
	c.err = c.products.Edit(context.Background(), name, newName, price)
	return c.err
}

func (c *shopTestContext) iDeleteProduct(name string) error {
	c.err = c.products.Delete(context.Background(), name)
	return nil
}

func (c *shopTestContext) iResetPassword(username, password string) error {
	c.err = c.auth.ResetCustomerPassword(context.Background(), username, password)
	return nil
}

func (c *shopTestContext) lookingUpProductFails(name string) error {
	if _, err := c.products.Query(name); !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("expected %s to be missing, got %v", name, err)
	}
	return nil
}

func (c *shopTestContext) thePriceIs(name string, price float64) error {
	p, err := c.products.Query(name)
	if err != nil {
		return err
	}
	if p.Price != price {
		return fmt.Errorf("expected %s to cost %v, got %v", name, price, p.Price)
	}
	return nil
}

func (c *shopTestContext) theCatalogLists(list string) error {
	var shown []string
	for _, p := range c.products.List() {
		shown = append(shown, p.String())
	}
	return equalLists(list, shown)
}

// equalLists compares a comma-separated expectation with got.
func equalLists(want string, got []string) error {
	var expected []string
	if want != "" {
		for _, s := range strings.Split(want, ",") {
			expected = append(expected, strings.TrimSpace(s))
		}
	}
	if strings.Join(expected, "|") != strings.Join(got, "|") || len(expected) != len(got) {
		return fmt.Errorf("expected %q, got %q", expected, got)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &shopTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a freshly seeded shop$`, tc.aFreshlySeededShop)
	ctx.Step(`^a registered customer "([^"]*)" with password "([^"]*)"$`, tc.aRegisteredCustomer)

	// When steps
	ctx.Step(`^I register "([^"]*)" with password "([^"]*)"$`, tc.iRegister)
	ctx.Step(`^I log in as "([^"]*)" with password "([^"]*)"$`, tc.iLogIn)
	ctx.Step(`^I log out$`, tc.iLogOut)
	ctx.Step(`^"([^"]*)" adds "([^"]*)" to the cart$`, tc.addsToCart)
	ctx.Step(`^"([^"]*)" removes "([^"]*)" from the cart$`, tc.removesFromCart)
	ctx.Step(`^"([^"]*)" checks out$`, tc.checksOut)
	ctx.Step(`^I add product "([^"]*)" priced (\d+(?:\.\d+)?)$`, tc.iAddProduct)
	ctx.Step(`^I edit product "([^"]*)" to "([^"]*)" priced (\d+(?:\.\d+)?)$`, tc.iEditProduct)
	ctx.Step(`^I delete product "([^"]*)"$`, tc.iDeleteProduct)
	ctx.Step(`^I reset the password of "([^"]*)" to "([^"]*)"$`, tc.iResetPassword)

	// Then steps
	ctx.Step(`^the session is "([^"]*)"$`, tc.theSessionIs)
	ctx.Step(`^the customers are "([^"]*)"$`, tc.theCustomersAre)
	ctx.Step(`^the last operation failed because the username exists$`, tc.failedWith(repositories.ErrAlreadyExists))
	ctx.Step(`^the last operation failed with invalid credentials$`, tc.failedWith(services.ErrInvalidCredentials))
	ctx.Step(`^the last operation failed with not found$`, tc.failedWith(repositories.ErrNotFound))
	ctx.Step(`^the cart of "([^"]*)" is "([^"]*)"$`, tc.theCartIs)
	ctx.Step(`^the cart of "([^"]*)" is empty$`, tc.theCartIsEmpty)
	ctx.Step(`^the history of "([^"]*)" is "([^"]*)"$`, tc.theHistoryIs)
	ctx.Step(`^the history of "([^"]*)" is empty$`, tc.theHistoryIsEmpty)
	ctx.Step(`^looking up product "([^"]*)" fails with not found$`, tc.lookingUpProductFails)
	ctx.Step(`^the price of "([^"]*)" is (\d+(?:\.\d+)?)$`, tc.thePriceIs)
	ctx.Step(`^the catalog lists "([^"]*)"$`, tc.theCatalogLists)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"shop.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
