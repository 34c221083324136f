package application

import "shootlist/internal/domain"

// Re-export domain types for use by adapters
type (
	Article    = domain.Article
	Variation  = domain.Variation
	Catalog    = domain.Catalog
	PhotoEvent = domain.PhotoEvent
	Phase      = domain.Phase
)

const (
	PositionFront = domain.PositionFront
	PositionBack  = domain.PositionBack
)
