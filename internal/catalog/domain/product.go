package domain

// Product is the canonical catalog record. Other services only ever consume
// read-only snapshots of it; they never reference it by foreign key.
type Product struct {
	ID         string   `bson:"_id" json:"id"`
	Nome       string   `bson:"nome" json:"nome"`
	Descricao  string   `bson:"descricao,omitempty" json:"descricao,omitempty"`
	Preco      float64  `bson:"preco" json:"preco"`
	Categorias []string `bson:"categorias,omitempty" json:"categorias,omitempty"`
}
