// Package service contains the application use cases: the account lifecycle,
// bookmark toggling, likes and recipe completions.
//
// Services depend only on the store interfaces and the auth abstractions.
// Operations that touch more than one row run inside store.RunInTransaction
// and bind every store they use to that transaction with WithTx. Failures are
// returned as *domain.Error values, which the API layer renders directly;
// anything else is an unexpected internal error.
package service
