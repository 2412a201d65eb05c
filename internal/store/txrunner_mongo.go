package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/statravel/sta/internal/logger"
	"github.com/statravel/sta/internal/reservation"
	"go.mongodb.org/mongo-driver/mongo"
)

// illegalOperationCode is the server error code a standalone mongod returns
// when a transaction is attempted (codeName IllegalOperation).
const illegalOperationCode = 20

// mongoTxRunner is the document-store implementation of
// [reservation.TxRunner]. Each RunAtomic call opens its own session, so the
// transaction scope never outlives the operation it wraps.
type mongoTxRunner struct {
	client *mongo.Client
	logger *logger.Logger
}

// NewMongoTxRunner constructs a transaction runner over the given document
// store connection.
func NewMongoTxRunner(m *Mongo, logger *logger.Logger) reservation.TxRunner {
	logger.Debug().Msg("creating transaction runner")
	return &mongoTxRunner{
		client: m.Client,
		logger: logger,
	}
}

// RunAtomic executes fn inside one server transaction. The session context
// passed to fn routes every collection operation through the transaction.
// A server that cannot run transactions surfaces as
// [reservation.ErrTransactionsUnsupported].
func (r *mongoTxRunner) RunAtomic(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := r.client.StartSession()
	if err != nil {
		return classifyTxError(err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	})
	if err != nil {
		return classifyTxError(err)
	}

	return nil
}

// Probe opens and commits an empty transaction to learn whether the server
// supports them at all.
func (r *mongoTxRunner) Probe(ctx context.Context) error {
	return r.RunAtomic(ctx, func(context.Context) error { return nil })
}

// classifyTxError translates the server's "transactions not here" responses
// into the unsupported sentinel and passes everything else through. The fn
// callback's own errors arrive here too and must survive unwrapped for
// [errors.Is] matching upstream.
func classifyTxError(err error) error {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		if cmdErr.Code == illegalOperationCode || cmdErr.Name == "IllegalOperation" {
			return fmt.Errorf("%w: %s", reservation.ErrTransactionsUnsupported, cmdErr.Message)
		}
	}

	// standalone deployments reject the session itself
	if strings.Contains(err.Error(), "does not support sessions") {
		return fmt.Errorf("%w: %s", reservation.ErrTransactionsUnsupported, err.Error())
	}

	return err
}
