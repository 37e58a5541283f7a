// Package mocks provides centralized mock implementations for testing.
//
// Each mock is a struct with one function field per interface method. A nil
// field falls back to a zero-value result, so tests only set what they exercise:
//
//	accounts := &mocks.MockAccountStore{
//	    GetByLoginFn: func(ctx context.Context, login string) (*domain.Account, error) {
//	        return nil, store.ErrAccountNotFound
//	    },
//	}
//
// Store mocks return themselves from WithTx, so the same instance observes
// calls made inside and outside a transaction.
package mocks
