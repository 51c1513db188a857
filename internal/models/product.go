package models

// ProductModel stores a shop card. Price is a display string, not a number:
// the shop never computes with it, checkout happens on the external store.
type ProductModel struct {
	Base        `bson:",inline"`
	Title       string `json:"title"       bson:"title"`
	Category    string `json:"category"    bson:"category"` // Environment, Prop, Texture, Addon
	Price       string `json:"price"       bson:"price"`
	Image       string `json:"image"       bson:"image"`
	GumroadLink string `json:"gumroadLink" bson:"gumroadLink"`
}

func (ProductModel) CollectionName() string { return "products" }
