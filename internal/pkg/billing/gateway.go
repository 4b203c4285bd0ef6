package billing

import (
	"sync"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"

	"github.com/sayit-app/sayit-api/internal/pkg/env"
)

// Gateway is the slice of the payment provider this service uses: issuing
// checkout tokens and re-verifying webhook notifications against the
// provider's own transaction-status API.
type Gateway interface {
	CreateCheckoutToken(orderID string, grossAmount int64, itemID, itemName string) (string, error)
	CheckTransaction(orderID string) (*coreapi.TransactionStatusResponse, error)
}

type midtransGateway struct {
	snap snap.Client
	core coreapi.Client
}

// NewMidtransGateway builds a gateway client for the given server key.
func NewMidtransGateway(serverKey string, production bool) Gateway {
	envType := midtrans.Sandbox
	if production {
		envType = midtrans.Production
	}

	g := &midtransGateway{}
	g.snap.New(serverKey, envType)
	g.core.New(serverKey, envType)
	return g
}

func (g *midtransGateway) CreateCheckoutToken(orderID string, grossAmount int64, itemID, itemName string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: grossAmount,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    itemID,
				Price: grossAmount,
				Qty:   1,
				Name:  itemName,
			},
		},
	}

	token, err := g.snap.CreateTransactionToken(req)
	if err != nil {
		return "", err
	}
	return token, nil
}

func (g *midtransGateway) CheckTransaction(orderID string) (*coreapi.TransactionStatusResponse, error) {
	resp, err := g.core.CheckTransaction(orderID)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

var (
	defaultGateway Gateway
	gatewayOnce    sync.Once
)

// DefaultGateway returns the lazily initialized process-wide gateway client.
func DefaultGateway() Gateway {
	gatewayOnce.Do(func() {
		defaultGateway = NewMidtransGateway(
			env.GetEnv("MIDTRANS_SERVER_KEY", ""),
			!env.IsDev(),
		)
	})
	return defaultGateway
}
