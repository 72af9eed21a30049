package cosmos

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"
)

// Page is one page of query results plus the store's continuation token.
// An empty ContinuationToken means there are no further pages. The token is
// opaque: callers pass it back verbatim on the next request.
type Page[T any] struct {
	Items             []T    `json:"items"`
	ContinuationToken string `json:"continuationToken,omitempty"`
}

// ListOptions carries pagination parameters for paged queries.
type ListOptions struct {
	PageSize     int32
	Continuation string
}

// CrossPartition is the partition key value that makes a query fan out over
// all partitions. Use only where no single-partition scoping is possible.
func CrossPartition() azcosmos.PartitionKey {
	return azcosmos.PartitionKey{}
}

// QueryPage runs a parameterized query against container and fetches exactly
// one page of results, resuming from opts.Continuation when set. Results are
// unmarshaled into T.
func QueryPage[T any](ctx context.Context, container *azcosmos.ContainerClient, query string, params []azcosmos.QueryParameter, pk azcosmos.PartitionKey, opts ListOptions) (Page[T], error) {
	qo := &azcosmos.QueryOptions{
		QueryParameters: params,
		PageSizeHint:    opts.PageSize,
	}
	if opts.Continuation != "" {
		qo.ContinuationToken = &opts.Continuation
	}

	pager := container.NewQueryItemsPager(query, pk, qo)

	var page Page[T]
	if !pager.More() {
		return page, nil
	}

	resp, err := pager.NextPage(ctx)
	if err != nil {
		return Page[T]{}, fmt.Errorf("query page: %w", err)
	}

	page.Items = make([]T, 0, len(resp.Items))
	for _, raw := range resp.Items {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return Page[T]{}, fmt.Errorf("unmarshal query result: %w", err)
		}
		page.Items = append(page.Items, v)
	}
	if resp.ContinuationToken != nil {
		page.ContinuationToken = *resp.ContinuationToken
	}

	return page, nil
}

// ReadItem point-reads the document with the given id and partition key and
// unmarshals it into T.
func ReadItem[T any](ctx context.Context, container *azcosmos.ContainerClient, pk azcosmos.PartitionKey, id string) (T, error) {
	var v T
	resp, err := container.ReadItem(ctx, pk, id, nil)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(resp.Value, &v); err != nil {
		return v, fmt.Errorf("unmarshal item %q: %w", id, err)
	}
	return v, nil
}
