package graph

import (
	graphql "github.com/graph-gophers/graphql-go"
)

// Schema is the catalog surface. Derived prices are read only, the
// store recomputes them whenever purchase price or margin change.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		products(skip: Int, limit: Int, categoryId: Int, distributorId: Int, vehicleType: String, oilType: String, fuelType: String, filterType: String): ProductsPage!
		product(id: Int!): Product
		productByCode(code: String!): Product

		categories(skip: Int, limit: Int): [Category!]!
		category(id: Int!): Category
		categoryByName(name: String!): Category

		distributors(skip: Int, limit: Int): [Distributor!]!
		distributor(id: Int!): Distributor
		distributorByRut(rut: String!): Distributor
	}

	type Mutation {
		createProduct(input: ProductInput!): Product!
		updateProduct(id: Int!, input: ProductPatch!): Product!
		deleteProduct(id: Int!): Product!

		createCategory(input: CategoryInput!): Category!
		updateCategory(id: Int!, input: CategoryPatch!): Category!
		deleteCategory(id: Int!): Category!

		createDistributor(input: DistributorInput!): Distributor!
		updateDistributor(id: Int!, input: DistributorPatch!): Distributor!
		deleteDistributor(id: Int!): Distributor!
	}

	type ProductsPage {
		items: [Product!]!
		total: Int!
		page: Int!
		pageSize: Int!
	}

	type Product {
		id: Int!
		code: String!
		name: String!
		brand: String!
		description: String!
		categoryId: Int!
		distributorId: Int!
		purchasePrice: Float!
		marginPct: Float!
		netPrice: Float!
		tax: Float!
		salePrice: Float!
		stock: Int!
		vehicleType: String!
		oilType: String!
		fuelType: String!
		filterType: String!
		isActive: Boolean!
		category: Category
		distributor: Distributor
	}

	type Category {
		id: Int!
		name: String!
		description: String!
		isActive: Boolean!
	}

	type Distributor {
		id: Int!
		name: String!
		rut: String!
		address: String!
		city: String!
		phone: String!
		email: String!
		isActive: Boolean!
	}

	input ProductInput {
		code: String!
		name: String!
		brand: String!
		description: String
		categoryId: Int!
		distributorId: Int
		purchasePrice: Float!
		marginPct: Float
		stock: Int
		vehicleType: String
		oilType: String
		fuelType: String
		filterType: String
	}

	input ProductPatch {
		code: String
		name: String
		brand: String
		description: String
		categoryId: Int
		distributorId: Int
		purchasePrice: Float
		marginPct: Float
		stock: Int
		vehicleType: String
		oilType: String
		fuelType: String
		filterType: String
	}

	input CategoryInput {
		name: String!
		description: String
	}

	input CategoryPatch {
		name: String
		description: String
	}

	input DistributorInput {
		name: String!
		rut: String!
		address: String
		city: String
		phone: String
		email: String
	}

	input DistributorPatch {
		name: String
		rut: String
		address: String
		city: String
		phone: String
		email: String
	}
`

// NewSchema parses the schema against the root resolver. Panics on a
// schema/resolver mismatch, which is a programming error.
func NewSchema() *graphql.Schema {
	return graphql.MustParseSchema(Schema, &Resolver{})
}
