package domain

// Document is the whole persisted state. Every mutation reads it, changes
// it in memory and writes it back in full.
type Document struct {
	Users    []User    `json:"users"    bson:"users"`
	Products []Product `json:"products" bson:"products"`
}

// FindProduct returns the index of the product with the given id, or -1.
func (d *Document) FindProduct(id string) int {
	for i := range d.Products {
		if d.Products[i].ID == id {
			return i
		}
	}
	return -1
}

// FindUser returns the user with the given username, or nil.
func (d *Document) FindUser(username string) *User {
	for i := range d.Users {
		if d.Users[i].Username == username {
			return &d.Users[i]
		}
	}
	return nil
}
