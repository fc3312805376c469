package domain

// DefaultTableCount is the number of tables the restaurant is configured with.
const DefaultTableCount = 100

// DefaultMenu returns the predefined catalog the service is seeded with.
func DefaultMenu() []MenuItem {
	return []MenuItem{
		{ID: 1, Name: "Salad", CookingTime: 1},
		{ID: 2, Name: "Soup", CookingTime: 5},
		{ID: 3, Name: "Sandwich", CookingTime: 7},
		{ID: 4, Name: "Pasta", CookingTime: 12},
		{ID: 5, Name: "Steak", CookingTime: 15},
		{ID: 6, Name: "Burger", CookingTime: 10},
		{ID: 7, Name: "Pizza", CookingTime: 14},
		{ID: 8, Name: "Tacos", CookingTime: 8},
		{ID: 9, Name: "Fries", CookingTime: 3},
		{ID: 10, Name: "Stir Fry", CookingTime: 10},
		{ID: 11, Name: "Omelette", CookingTime: 4},
		{ID: 12, Name: "Pancakes", CookingTime: 6},
		{ID: 13, Name: "Sushi", CookingTime: 12},
		{ID: 14, Name: "Curry", CookingTime: 15},
		{ID: 15, Name: "Fish & Chips", CookingTime: 13},
		{ID: 16, Name: "Fried Rice", CookingTime: 9},
		{ID: 17, Name: "Ramen", CookingTime: 14},
		{ID: 18, Name: "Burrito", CookingTime: 8},
		{ID: 19, Name: "Waffles", CookingTime: 5},
		{ID: 20, Name: "Salmon", CookingTime: 13},
	}
}

// DefaultTables returns table IDs 1..DefaultTableCount.
func DefaultTables() []uint32 {
	tables := make([]uint32, 0, DefaultTableCount)
	for id := uint32(1); id <= DefaultTableCount; id++ {
		tables = append(tables, id)
	}
	return tables
}
