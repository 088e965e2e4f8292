package gql

import (
	"github.com/graphql-go/graphql"
)

// NewSchema собирает схему запросов слотов бронирования
func NewSchema(r *Resolver) (graphql.Schema, error) {
	slotType := graphql.NewObject(graphql.ObjectConfig{
		Name: "BookingSlot",
		Fields: graphql.Fields{
			"from":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"to":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"timestamp": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"booked":    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	bookingProductType := graphql.NewObject(graphql.ObjectConfig{
		Name: "BookingProduct",
		Fields: graphql.Fields{
			"id":                 &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"productId":          &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"type":               &graphql.Field{Type: graphql.String},
			"qty":                &graphql.Field{Type: graphql.Int},
			"availableEveryWeek": &graphql.Field{Type: graphql.Boolean},
			"availableFrom":      &graphql.Field{Type: graphql.String},
			"availableTo":        &graphql.Field{Type: graphql.String},
		},
	})

	slotDateArgs := graphql.FieldConfigArgument{
		"slotDate": &graphql.ArgumentConfig{Type: graphql.String},
	}

	productType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Product",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.Int),
				Resolve: r.productID,
			},
			"bookingProduct": &graphql.Field{
				Type:    bookingProductType,
				Resolve: r.bookingProduct,
			},
			"formattedTableSlots": &graphql.Field{
				Type:    graphql.String,
				Args:    slotDateArgs,
				Resolve: r.formattedTableSlots,
			},
			"tableSlots": &graphql.Field{
				Type:    graphql.NewList(graphql.NewNonNull(slotType)),
				Args:    slotDateArgs,
				Resolve: r.tableSlots,
			},
		},
	})

	filterInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "FilterInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"key":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"value": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	bookingSlotsType := graphql.NewObject(graphql.ObjectConfig{
		Name: "BookingSlots",
		Fields: graphql.Fields{
			"productId": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"date":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"slots":     &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(slotType))},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"product": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"filters": &graphql.ArgumentConfig{Type: graphql.NewList(graphql.NewNonNull(filterInput))},
				},
				Resolve: r.product,
			},
			"bookingSlots": &graphql.Field{
				Type: bookingSlotsType,
				Args: graphql.FieldConfigArgument{
					"productId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"slotDate":  &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.bookingSlots,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: queryType})
}
