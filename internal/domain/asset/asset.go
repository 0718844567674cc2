// Package asset holds the root entity tickets are raised against: a piece of
// equipment or a location.
package asset

import (
	"fmt"
	"strings"
)

type Asset struct {
	id          int64
	title       string
	description string
}

// NewAsset creates an asset that has not been stored yet. Free text is
// trimmed.
func NewAsset(title, description string) *Asset {
	return &Asset{
		title:       strings.TrimSpace(title),
		description: strings.TrimSpace(description),
	}
}

// ReconstructAsset rebuilds an asset loaded from storage.
func ReconstructAsset(id int64, title, description string) (*Asset, error) {
	if id <= 0 {
		return nil, fmt.Errorf("asset ID must be positive")
	}
	return &Asset{
		id:          id,
		title:       title,
		description: description,
	}, nil
}

func (a *Asset) ID() int64 {
	return a.id
}

func (a *Asset) Title() string {
	return a.title
}

func (a *Asset) Description() string {
	return a.description
}

// SetID assigns the store generated id. It can only be set once.
func (a *Asset) SetID(id int64) error {
	if a.id != 0 {
		return fmt.Errorf("asset ID is already set")
	}
	if id <= 0 {
		return fmt.Errorf("asset ID must be positive")
	}
	a.id = id
	return nil
}
