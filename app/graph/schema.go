// Package graph exposes a read-only GraphQL view over the catalogue
// and the session cart, for clients that want to fetch the storefront
// in one round trip.
package graph

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/models"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/services"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/store"
	gqlschema "github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/graphql"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/response"
)

// gorm.Model's ID has no json tag, so the default resolver cannot see
// it; resolve it explicitly.
func productID(p graphql.ResolveParams) (interface{}, error) {
	if product, ok := p.Source.(models.Product); ok {
		return product.ID, nil
	}
	return nil, nil
}

func sellerID(p graphql.ResolveParams) (interface{}, error) {
	if seller, ok := p.Source.(models.Seller); ok {
		return seller.ID, nil
	}
	return nil, nil
}

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.Int, Resolve: productID},
		"name":      &graphql.Field{Type: graphql.String},
		"category":  &graphql.Field{Type: graphql.String},
		"price":     &graphql.Field{Type: graphql.Float},
		"stock":     &graphql.Field{Type: graphql.Int},
		"rating":    &graphql.Field{Type: graphql.Float},
		"badge":     &graphql.Field{Type: graphql.String},
		"seller_id": &graphql.Field{Type: graphql.Int},
	},
})

var sellerType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Seller",
	Fields: graphql.Fields{
		"id":            &graphql.Field{Type: graphql.Int, Resolve: sellerID},
		"business_name": &graphql.Field{Type: graphql.String},
		"category":      &graphql.Field{Type: graphql.String},
		"rating":        &graphql.Field{Type: graphql.Float},
		"verified":      &graphql.Field{Type: graphql.Boolean},
	},
})

// NewSchema builds the root query over the catalogue service and the
// session store manager.
func NewSchema(catalog *services.CatalogService, stores *store.Manager) (graphql.Schema, error) {
	root := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type: graphql.NewList(productType),
				Args: graphql.FieldConfigArgument{
					"category": &graphql.ArgumentConfig{Type: graphql.String},
					"search":   &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					category, _ := p.Args["category"].(string)
					search, _ := p.Args["search"].(string)
					products, _, err := catalog.Products(category, search, 1, 100)
					return products, err
				},
			},
			"product": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(int)
					return catalog.Product(uint(id))
				},
			},
			"sellers": &graphql.Field{
				Type: graphql.NewList(sellerType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					sellers, _, err := catalog.Sellers(1, 100)
					return sellers, err
				},
			},
			"cartTotal": &graphql.Field{
				Type: graphql.Float,
				Args: graphql.FieldConfigArgument{
					"session": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					session, _ := p.Args["session"].(string)
					return stores.For(session).CartTotal(), nil
				},
			},
		},
	})

	return gqlschema.NewSchema(root)
}

// Handler serves POSTed GraphQL queries against the schema.
func Handler(schema graphql.Schema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Query     string                 `json:"query"`
			Variables map[string]interface{} `json:"variables"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			response.Error(w, http.StatusBadRequest, "invalid request body")
			return
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  body.Query,
			VariableValues: body.Variables,
		})

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}
