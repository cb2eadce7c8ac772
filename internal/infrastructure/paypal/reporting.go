package paypal

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/DanielPopoola/paypal-payment-gateway/internal/domain"
)

const (
	transactionPageSize = 100
	// MaxTransactionWindow is the widest date range the reporting API accepts.
	MaxTransactionWindow = 31 * 24 * time.Hour
)

// ListTransactions collects every transaction in the query window, following
// the reporting API's pages until total_items have been read. Transactions
// show up there a few hours after they happen.
func (c *Client) ListTransactions(ctx context.Context, query TransactionQuery) ([]Transaction, error) {
	now := time.Now()
	start, end := query.StartDate, query.EndDate
	if start.IsZero() {
		start = now
	}
	if end.IsZero() {
		end = now
	}
	if end.Before(start) || end.Sub(start) > MaxTransactionWindow {
		return nil, domain.NewDataError(
			"Invalid PayPal transaction date range.",
			true,
			map[string]any{"start_date": start.UTC().Format(time.RFC3339), "end_date": end.UTC().Format(time.RFC3339)},
		)
	}

	params := url.Values{}
	params.Set("start_date", start.UTC().Format(time.RFC3339))
	params.Set("end_date", end.UTC().Format(time.RFC3339))
	params.Set("fields", "transaction_info")
	params.Set("page_size", strconv.Itoa(transactionPageSize))

	var transactions []Transaction
	for page := 1; ; page++ {
		params.Set("page", strconv.Itoa(page))
		endpoint := c.baseURL + "/v1/reporting/transactions?" + params.Encode()

		resp, err := sendRequest[any, TransactionsPage](c, ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, toDomainError(err, "Could not list PayPal transactions.")
		}

		transactions = append(transactions, resp.TransactionDetails...)
		if len(resp.TransactionDetails) == 0 || len(transactions) >= resp.TotalItems || page >= resp.TotalPages {
			break
		}
	}

	c.logger.Debug("paypal transactions listed",
		"start_date", params.Get("start_date"),
		"end_date", params.Get("end_date"),
		"count", len(transactions),
	)
	return transactions, nil
}
