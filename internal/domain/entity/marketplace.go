package entity

import (
	"time"
)

type SyncSettings struct {
	AutoSync     bool `json:"auto_sync" firestore:"autoSync"`
	SyncInterval int  `json:"sync_interval" firestore:"syncInterval"`
}

type MarketplaceSettings struct {
	ID           string       `json:"id" firestore:"id"`
	Marketplace  string       `json:"marketplace" firestore:"marketplace"`
	Enabled      bool         `json:"enabled" firestore:"enabled"`
	SyncSettings SyncSettings `json:"sync_settings" firestore:"syncSettings"`
	UpdatedAt    time.Time    `json:"updated_at" firestore:"updatedAt"`
}

type CompetitorPrice struct {
	Price float64 `json:"price"`
	URL   string  `json:"url"`
}

type PriceCheckResult struct {
	Success bool             `json:"success"`
	Walmart *CompetitorPrice `json:"walmart"`
	BestBuy *CompetitorPrice `json:"bestbuy"`
	Demand  string           `json:"demand,omitempty"`
	Error   string           `json:"error,omitempty"`
}
