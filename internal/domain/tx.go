package domain

import "context"

// TxRunner executes fn inside one storage transaction. Repository calls
// made with the ctx passed to fn observe a single consistent snapshot and
// commit or roll back together. The multi-step apply, accept, rating and
// interview-record units all run under it.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
