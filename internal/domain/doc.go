// Package domain contains the core business entities of the recipe service
// (accounts, recipes and the records that reference an account) together with
// the error taxonomy shared by every layer above storage.
package domain
