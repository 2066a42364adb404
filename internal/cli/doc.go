// Package cli is the terminal front end of aqikeeper.
//
// It prompts for sign-up and login details, calls the credential store and
// keeps the only piece of session state in the program: whether a user is
// logged in, and as whom. The store itself is stateless between calls.
package cli
