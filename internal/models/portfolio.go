package models

// PortfolioModel stores a single portfolio card: a rendered artwork image
// plus the ArtStation page it links out to.
type PortfolioModel struct {
	Base           `bson:",inline"`
	Title          string `json:"title"          bson:"title"`
	Image          string `json:"image"          bson:"image"` // object store URL
	ArtstationLink string `json:"artstationLink" bson:"artstationLink"`
	Category       string `json:"category"       bson:"category"`
}

// DefaultPortfolioCategory is applied when the admin leaves the field blank.
const DefaultPortfolioCategory = "General"

func (PortfolioModel) CollectionName() string { return "portfolios" }
