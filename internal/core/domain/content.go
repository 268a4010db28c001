package domain

// PostTypeProduct is the post type of commerce products.
const PostTypeProduct = "product"

// Post is the minimal local record needed to route a post reference.
type Post struct {
	ID   int64
	Type string
}

// IsProduct reports whether the post is a commerce product.
func (p Post) IsProduct() bool {
	return p.Type == PostTypeProduct
}

// Term is a local taxonomy term. Slug is the only identifier that is
// stable across instances.
type Term struct {
	ID       int64
	Taxonomy string
	Slug     string
}

// Taxonomy describes a registered taxonomy.
type Taxonomy struct {
	// Name is the taxonomy name, e.g. "product_cat".
	Name string

	// RESTBase is the REST collection path segment. Empty means Name.
	RESTBase string
}

// CollectionPath returns the REST collection segment for the taxonomy.
func (t Taxonomy) CollectionPath() string {
	if t.RESTBase != "" {
		return t.RESTBase
	}
	return t.Name
}
