// Package cosmos wraps the Azure Cosmos DB client with the small surface the
// repositories need: point reads/writes by partition key, field-level patches,
// and single-page filtered queries with opaque continuation tokens.
//
// Database and container provisioning happens exactly once, at startup, via
// Store.Provision — write paths never re-check container existence.
package cosmos

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"

	"github.com/naatukodi/catering/pkg/config"
)

// Store holds the Cosmos client plus one container client per aggregate.
// Construct with New once at startup and inject into repositories.
type Store struct {
	client       *azcosmos.Client
	databaseID   string
	Catalog      *azcosmos.ContainerClient
	Orders       *azcosmos.ContainerClient
	ServiceAreas *azcosmos.ContainerClient
	Users        *azcosmos.ContainerClient
}

// New builds a Store from config. It only constructs clients; it does not
// touch the network. Call Provision before serving traffic.
func New(cfg *config.Config) (*Store, error) {
	cred, err := azcosmos.NewKeyCredential(cfg.CosmosKey)
	if err != nil {
		return nil, fmt.Errorf("cosmos credential: %w", err)
	}

	client, err := azcosmos.NewClientWithKey(cfg.CosmosEndpoint, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("cosmos client: %w", err)
	}

	s := &Store{client: client, databaseID: cfg.CosmosDatabase}

	containers := []struct {
		id  string
		dst **azcosmos.ContainerClient
	}{
		{cfg.CatalogContainerID, &s.Catalog},
		{cfg.OrdersContainerID, &s.Orders},
		{cfg.ServiceAreasContainerID, &s.ServiceAreas},
		{cfg.UsersContainerID, &s.Users},
	}
	for _, c := range containers {
		cc, err := client.NewContainer(cfg.CosmosDatabase, c.id)
		if err != nil {
			return nil, fmt.Errorf("container client %q: %w", c.id, err)
		}
		*c.dst = cc
	}

	return s, nil
}

// Provision creates the database and all containers if they do not exist.
// Runs once at startup; a 409 from the store means the resource is already
// there and is treated as success. The serviceareas container gets a
// (rank DESC, createdAt DESC) composite index to back its list ordering.
func (s *Store) Provision(ctx context.Context, cfg *config.Config) error {
	if _, err := s.client.CreateDatabase(ctx, azcosmos.DatabaseProperties{ID: s.databaseID}, nil); err != nil && !IsConflict(err) {
		return fmt.Errorf("create database %q: %w", s.databaseID, err)
	}

	db, err := s.client.NewDatabase(s.databaseID)
	if err != nil {
		return fmt.Errorf("database client: %w", err)
	}

	props := []azcosmos.ContainerProperties{
		{
			ID:                     cfg.CatalogContainerID,
			PartitionKeyDefinition: azcosmos.PartitionKeyDefinition{Paths: []string{"/catererId"}},
		},
		{
			ID:                     cfg.OrdersContainerID,
			PartitionKeyDefinition: azcosmos.PartitionKeyDefinition{Paths: []string{"/orderId"}},
		},
		{
			ID:                     cfg.ServiceAreasContainerID,
			PartitionKeyDefinition: azcosmos.PartitionKeyDefinition{Paths: []string{"/pincode"}},
			IndexingPolicy: &azcosmos.IndexingPolicy{
				Automatic:    true,
				IndexingMode: azcosmos.IndexingModeConsistent,
				IncludedPaths: []azcosmos.IncludedPath{
					{Path: "/*"},
				},
				CompositeIndexes: [][]azcosmos.CompositeIndex{
					{
						{Path: "/rank", Order: azcosmos.CompositeIndexDescending},
						{Path: "/createdAt", Order: azcosmos.CompositeIndexDescending},
					},
				},
			},
		},
		{
			ID:                     cfg.UsersContainerID,
			PartitionKeyDefinition: azcosmos.PartitionKeyDefinition{Paths: []string{"/userId"}},
		},
	}

	for _, p := range props {
		if _, err := db.CreateContainer(ctx, p, nil); err != nil && !IsConflict(err) {
			return fmt.Errorf("create container %q: %w", p.ID, err)
		}
	}

	return nil
}

// Ping verifies the database is reachable. Satisfies httpx.HealthChecker.
func (s *Store) Ping(ctx context.Context) error {
	db, err := s.client.NewDatabase(s.databaseID)
	if err != nil {
		return err
	}
	_, err = db.Read(ctx, nil)
	return err
}

// IsNotFound reports whether err is a 404 from the store.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsConflict reports whether err is a 409 from the store (id collision or
// resource already exists).
func IsConflict(err error) bool {
	return hasStatus(err, http.StatusConflict)
}

func hasStatus(err error, status int) bool {
	var respErr *azcore.ResponseError
	return errors.As(err, &respErr) && respErr.StatusCode == status
}
