package controllers

import "errors"

var errNoAccount = errors.New("no account logged in")
