// Command shop is the console shopping application.
//
//	shop                  # start the console (same as `shop run`)
//	shop run              # start the console
//	shop menu:list        # list every menu option
//	shop menu:list --menu admin.products
//	shop seed:list        # list the startup seeders
//
// Logs go to stderr; set LOG_LEVEL=debug (in .env or config/app.json) to
// see every menu action.
package main
