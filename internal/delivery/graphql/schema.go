package graphql

import (
	gql "github.com/graphql-go/graphql"
)

// NewSchema builds the schema served at /graphql. Field names follow the
// legacy admin API so existing clients keep working.
func NewSchema(r *Resolver) (gql.Schema, error) {
	pointType := gql.NewObject(gql.ObjectConfig{
		Name: "Point",
		Fields: gql.Fields{
			"type":        &gql.Field{Type: gql.NewNonNull(gql.String)},
			"coordinates": &gql.Field{Type: gql.NewList(gql.Float)},
		},
	})

	polygonType := gql.NewObject(gql.ObjectConfig{
		Name: "Polygon",
		Fields: gql.Fields{
			"type":        &gql.Field{Type: gql.NewNonNull(gql.String)},
			"coordinates": &gql.Field{Type: gql.NewList(gql.NewList(gql.NewList(gql.Float)))},
		},
	})

	circleBoundsType := gql.NewObject(gql.ObjectConfig{
		Name: "CircleBounds",
		Fields: gql.Fields{
			"radius": &gql.Field{Type: gql.NewNonNull(gql.Float)},
		},
	})

	deliveryZoneInfoType := gql.NewObject(gql.ObjectConfig{
		Name: "RestaurantDeliveryZoneInfo",
		Fields: gql.Fields{
			"address":        &gql.Field{Type: gql.String},
			"boundType":      &gql.Field{Type: gql.NewNonNull(gql.String)},
			"location":       &gql.Field{Type: pointType},
			"deliveryBounds": &gql.Field{Type: polygonType},
			"circleBounds":   &gql.Field{Type: circleBoundsType},
		},
	})

	zoneType := gql.NewObject(gql.ObjectConfig{
		Name: "Zone",
		Fields: gql.Fields{
			"_id":         &gql.Field{Type: gql.NewNonNull(gql.ID)},
			"title":       &gql.Field{Type: gql.NewNonNull(gql.String)},
			"description": &gql.Field{Type: gql.String},
			"location":    &gql.Field{Type: polygonType},
			"isActive":    &gql.Field{Type: gql.NewNonNull(gql.Boolean)},
		},
	})

	restaurantType := gql.NewObject(gql.ObjectConfig{
		Name: "Restaurant",
		Fields: gql.Fields{
			"_id":            &gql.Field{Type: gql.NewNonNull(gql.ID)},
			"name":           &gql.Field{Type: gql.NewNonNull(gql.String)},
			"address":        &gql.Field{Type: gql.String},
			"shopType":       &gql.Field{Type: gql.String},
			"isActive":       &gql.Field{Type: gql.NewNonNull(gql.Boolean)},
			"isAvailable":    &gql.Field{Type: gql.NewNonNull(gql.Boolean)},
			"boundType":      &gql.Field{Type: gql.NewNonNull(gql.String)},
			"location":       &gql.Field{Type: pointType},
			"deliveryBounds": &gql.Field{Type: polygonType},
			"circleBounds":   &gql.Field{Type: circleBoundsType},
			"zone":           &gql.Field{Type: gql.ID},
		},
	})

	updateResultType := gql.NewObject(gql.ObjectConfig{
		Name: "DeliveryBoundsUpdateResult",
		Fields: gql.Fields{
			"success": &gql.Field{Type: gql.NewNonNull(gql.Boolean)},
			"message": &gql.Field{Type: gql.String},
			"code":    &gql.Field{Type: gql.String},
			"data":    &gql.Field{Type: restaurantType},
		},
	})

	locationInput := gql.NewInputObject(gql.InputObjectConfig{
		Name: "LocationInput",
		Fields: gql.InputObjectConfigFieldMap{
			"latitude":  &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.Float)},
			"longitude": &gql.InputObjectFieldConfig{Type: gql.NewNonNull(gql.Float)},
		},
	})

	queryType := gql.NewObject(gql.ObjectConfig{
		Name: "Query",
		Fields: gql.Fields{
			"getRestaurantDeliveryZoneInfo": &gql.Field{
				Type: deliveryZoneInfoType,
				Args: gql.FieldConfigArgument{
					"id": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
				},
				Resolve: r.getRestaurantDeliveryZoneInfo,
			},
			"zones": &gql.Field{
				Type:    gql.NewNonNull(gql.NewList(gql.NewNonNull(zoneType))),
				Resolve: r.zones,
			},
			"nearByRestaurants": &gql.Field{
				Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(restaurantType))),
				Args: gql.FieldConfigArgument{
					"latitude":  &gql.ArgumentConfig{Type: gql.NewNonNull(gql.Float)},
					"longitude": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.Float)},
					"shopType":  &gql.ArgumentConfig{Type: gql.String},
				},
				Resolve: r.nearByRestaurants,
			},
		},
	})

	mutationType := gql.NewObject(gql.ObjectConfig{
		Name: "Mutation",
		Fields: gql.Fields{
			"updateDeliveryBoundsAndLocation": &gql.Field{
				Type: gql.NewNonNull(updateResultType),
				Args: gql.FieldConfigArgument{
					"id":           &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
					"location":     &gql.ArgumentConfig{Type: gql.NewNonNull(locationInput)},
					"boundType":    &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
					"bounds":       &gql.ArgumentConfig{Type: coordinatesScalar},
					"circleRadius": &gql.ArgumentConfig{Type: gql.Float},
				},
				Resolve: r.updateDeliveryBoundsAndLocation,
			},
		},
	})

	return gql.NewSchema(gql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
