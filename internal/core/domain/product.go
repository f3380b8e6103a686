package domain

// Product is a catalog entry. ID is assigned on insert and never changes.
type Product struct {
	ID       string  `json:"id"       bson:"id"`
	Name     string  `json:"name"     bson:"name"`
	Category string  `json:"category" bson:"category"`
	Price    float64 `json:"price"    bson:"price"`
	Stock    int     `json:"stock"    bson:"stock"`
	Image    string  `json:"image"    bson:"image"`
}
