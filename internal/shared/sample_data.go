package shared

import "tastemap/internal/domain"

// SampleRestaurants is the fixed data set loaded by the seeder. In a real
// deployment this would come from an external feed or a larger JSON file.
var SampleRestaurants = []domain.Restaurant{
	{
		Name:        "Spice Delight",
		Description: "Authentic Indian cuisine with a modern twist. Our chefs use traditional spices and cooking techniques to create flavorful dishes.",
		Location: domain.Location{
			Address:     "123 Curry Lane",
			Locality:    "Downtown",
			City:        "Mumbai",
			Country:     "India",
			Coordinates: domain.NewGeoPoint(72.8777, 19.0760),
		},
		Cuisines:          []string{"Indian", "Curry", "Vegetarian"},
		AverageCostForTwo: 800,
		Currency:          "₹",
		HasOnlineDelivery: true,
		IsDeliveringNow:   true,
		HasTableBooking:   true,
		PriceRange:        3,
		UserRating:        domain.UserRating{AggregateRating: 4.5, RatingText: "Excellent", Votes: 1245},
		Photos: []domain.Photo{
			{
				URL:      "https://images.pexels.com/photos/2474661/pexels-photo-2474661.jpeg",
				ThumbURL: "https://images.pexels.com/photos/2474661/pexels-photo-2474661.jpeg?auto=compress&cs=tinysrgb&w=400",
				Caption:  "Butter Chicken with Naan",
			},
			{
				URL:      "https://images.pexels.com/photos/5409010/pexels-photo-5409010.jpeg",
				ThumbURL: "https://images.pexels.com/photos/5409010/pexels-photo-5409010.jpeg?auto=compress&cs=tinysrgb&w=400",
				Caption:  "Vegetable Biryani",
			},
		},
		FeaturedImage: "https://images.pexels.com/photos/2474661/pexels-photo-2474661.jpeg",
		OpeningHours:  "11:00 AM - 11:00 PM",
		PhoneNumbers:  "+91 9876543210",
		Highlights:    []string{"Outdoor Seating", "WiFi", "Live Music"},
	},
	{
		Name:        "Pasta Paradise",
		Description: "Authentic Italian pasta and pizza made with fresh ingredients imported from Italy.",
		Location: domain.Location{
			Address:     "456 Marinara Street",
			Locality:    "Little Italy",
			City:        "Rome",
			Country:     "Italy",
			Coordinates: domain.NewGeoPoint(12.4964, 41.9028),
		},
		Cuisines:          []string{"Italian", "Pizza", "Pasta"},
		AverageCostForTwo: 60,
		Currency:          "€",
		HasOnlineDelivery: true,
		IsDeliveringNow:   true,
		HasTableBooking:   true,
		PriceRange:        3,
		UserRating:        domain.UserRating{AggregateRating: 4.7, RatingText: "Excellent", Votes: 2134},
		Photos: []domain.Photo{
			{
				URL:      "https://images.pexels.com/photos/1527603/pexels-photo-1527603.jpeg",
				ThumbURL: "https://images.pexels.com/photos/1527603/pexels-photo-1527603.jpeg?auto=compress&cs=tinysrgb&w=400",
				Caption:  "Spaghetti Carbonara",
			},
			{
				URL:      "https://images.pexels.com/photos/905847/pexels-photo-905847.jpeg",
				ThumbURL: "https://images.pexels.com/photos/905847/pexels-photo-905847.jpeg?auto=compress&cs=tinysrgb&w=400",
				Caption:  "Margherita Pizza",
			},
		},
		FeaturedImage: "https://images.pexels.com/photos/1527603/pexels-photo-1527603.jpeg",
		OpeningHours:  "12:00 PM - 10:00 PM",
		PhoneNumbers:  "+39 0123456789",
		Highlights:    []string{"Wine Selection", "Authentic", "Family Friendly"},
	},
	{
		Name:        "Sushi Master",
		Description: "Traditional Japanese sushi and sashimi prepared by expert chefs with fresh seafood.",
		Location: domain.Location{
			Address:     "789 Wasabi Way",
			Locality:    "Shibuya",
			City:        "Tokyo",
			Country:     "Japan",
			Coordinates: domain.NewGeoPoint(139.7030, 35.6580),
		},
		Cuisines:          []string{"Japanese", "Sushi", "Seafood"},
		AverageCostForTwo: 8000,
		Currency:          "¥",
		HasTableBooking:   true,
		PriceRange:        4,
		UserRating:        domain.UserRating{AggregateRating: 4.9, RatingText: "Exceptional", Votes: 3021},
		Photos: []domain.Photo{
			{
				URL:      "https://images.pexels.com/photos/2098085/pexels-photo-2098085.jpeg",
				ThumbURL: "https://images.pexels.com/photos/2098085/pexels-photo-2098085.jpeg?auto=compress&cs=tinysrgb&w=400",
				Caption:  "Assorted Sushi Platter",
			},
			{
				URL:      "https://images.pexels.com/photos/884600/pexels-photo-884600.jpeg",
				ThumbURL: "https://images.pexels.com/photos/884600/pexels-photo-884600.jpeg?auto=compress&cs=tinysrgb&w=400",
				Caption:  "Salmon Sashimi",
			},
		},
		FeaturedImage: "https://images.pexels.com/photos/2098085/pexels-photo-2098085.jpeg",
		OpeningHours:  "5:00 PM - 11:00 PM",
		PhoneNumbers:  "+81 0123456789",
		Highlights:    []string{"Omakase", "Sake Selection", "Chef's Counter"},
	},
	{
		Name:        "Burger Bistro",
		Description: "Gourmet burgers made with premium beef and fresh ingredients. We offer a variety of unique toppings and house-made sauces.",
		Location: domain.Location{
			Address:     "101 Patty Place",
			Locality:    "Downtown",
			City:        "New York",
			Country:     "USA",
			Coordinates: domain.NewGeoPoint(-74.0060, 40.7128),
		},
		Cuisines:          []string{"American", "Burgers", "Fast Food"},
		AverageCostForTwo: 40,
		Currency:          "$",
		HasOnlineDelivery: true,
		IsDeliveringNow:   true,
		PriceRange:        2,
		UserRating:        domain.UserRating{AggregateRating: 4.3, RatingText: "Very Good", Votes: 1876},
		Photos: []domain.Photo{
			{
				URL:      "https://images.pexels.com/photos/1639557/pexels-photo-1639557.jpeg",
				ThumbURL: "https://images.pexels.com/photos/1639557/pexels-photo-1639557.jpeg?auto=compress&cs=tinysrgb&w=400",
				Caption:  "Classic Cheeseburger",
			},
			{
				URL:      "https://images.pexels.com/photos/1583884/pexels-photo-1583884.jpeg",
				ThumbURL: "https://images.pexels.com/photos/1583884/pexels-photo-1583884.jpeg?auto=compress&cs=tinysrgb&w=400",
				Caption:  "Loaded Fries",
			},
		},
		FeaturedImage: "https://images.pexels.com/photos/1639557/pexels-photo-1639557.jpeg",
		OpeningHours:  "11:00 AM - 10:00 PM",
		PhoneNumbers:  "+1 212-555-0123",
		Highlights:    []string{"Craft Beer", "Outdoor Seating", "Takeout"},
	},
	{
		Name:        "Taco Fiesta",
		Description: "Authentic Mexican tacos, burritos, and quesadillas made with traditional recipes and fresh ingredients.",
		Location: domain.Location{
			Address:     "202 Salsa Street",
			Locality:    "Zona Rosa",
			City:        "Mexico City",
			Country:     "Mexico",
			Coordinates: domain.NewGeoPoint(-99.1332, 19.4326),
		},
		Cuisines:          []string{"Mexican", "Tacos", "Latin American"},
		AverageCostForTwo: 400,
		Currency:          "Mex$",
		HasOnlineDelivery: true,
		IsDeliveringNow:   true,
		PriceRange:        2,
		UserRating:        domain.UserRating{AggregateRating: 4.4, RatingText: "Very Good", Votes: 1543},
		Photos: []domain.Photo{
			{
				URL:      "https://images.pexels.com/photos/2092507/pexels-photo-2092507.jpeg",
				ThumbURL: "https://images.pexels.com/photos/2092507/pexels-photo-2092507.jpeg?auto=compress&cs=tinysrgb&w=400",
				Caption:  "Street Tacos",
			},
			{
				URL:      "https://images.pexels.com/photos/5737247/pexels-photo-5737247.jpeg",
				ThumbURL: "https://images.pexels.com/photos/5737247/pexels-photo-5737247.jpeg?auto=compress&cs=tinysrgb&w=400",
				Caption:  "Chicken Quesadilla",
			},
		},
		FeaturedImage: "https://images.pexels.com/photos/2092507/pexels-photo-2092507.jpeg",
		OpeningHours:  "10:00 AM - 9:00 PM",
		PhoneNumbers:  "+52 55-1234-5678",
		Highlights:    []string{"Margaritas", "Salsa Bar", "Fast Service"},
	},
	{
		Name:        "Thai Spice",
		Description: "Authentic Thai cuisine with bold flavors and fresh ingredients. Our chefs create traditional dishes with a modern presentation.",
		Location: domain.Location{
			Address:     "303 Lemongrass Lane",
			Locality:    "Sukhumvit",
			City:        "Bangkok",
			Country:     "Thailand",
			Coordinates: domain.NewGeoPoint(100.5018, 13.7563),
		},
		Cuisines:          []string{"Thai", "Asian", "Curry"},
		AverageCostForTwo: 800,
		Currency:          "฿",
		HasOnlineDelivery: true,
		HasTableBooking:   true,
		PriceRange:        3,
		UserRating:        domain.UserRating{AggregateRating: 4.6, RatingText: "Excellent", Votes: 1987},
		Photos: []domain.Photo{
			{
				URL:      "https://images.pexels.com/photos/699953/pexels-photo-699953.jpeg",
				ThumbURL: "https://images.pexels.com/photos/699953/pexels-photo-699953.jpeg?auto=compress&cs=tinysrgb&w=400",
				Caption:  "Pad Thai",
			},
			{
				URL:      "https://images.pexels.com/photos/1640772/pexels-photo-1640772.jpeg",
				ThumbURL: "https://images.pexels.com/photos/1640772/pexels-photo-1640772.jpeg?auto=compress&cs=tinysrgb&w=400",
				Caption:  "Green Curry",
			},
		},
		FeaturedImage: "https://images.pexels.com/photos/699953/pexels-photo-699953.jpeg",
		OpeningHours:  "11:30 AM - 10:30 PM",
		PhoneNumbers:  "+66 2-123-4567",
		Highlights:    []string{"Spicy", "Vegetarian Options", "Street Food"},
	},
	{
		Name:        "Café Parisienne",
		Description: "Charming French café serving pastries, sandwiches, and classic French dishes in an authentic Parisian atmosphere.",
		Location: domain.Location{
			Address:     "404 Baguette Boulevard",
			Locality:    "Montmartre",
			City:        "Paris",
			Country:     "France",
			Coordinates: domain.NewGeoPoint(2.3522, 48.8566),
		},
		Cuisines:          []string{"French", "Café", "Bakery"},
		AverageCostForTwo: 50,
		Currency:          "€",
		HasTableBooking:   true,
		PriceRange:        3,
		UserRating:        domain.UserRating{AggregateRating: 4.5, RatingText: "Excellent", Votes: 1456},
		Photos: []domain.Photo{
			{
				URL:      "https://images.pexels.com/photos/205961/pexels-photo-205961.jpeg",
				ThumbURL: "https://images.pexels.com/photos/205961/pexels-photo-205961.jpeg?auto=compress&cs=tinysrgb&w=400",
				Caption:  "Croissants and Coffee",
			},
			{
				URL:      "https://images.pexels.com/photos/1603901/pexels-photo-1603901.jpeg",
				ThumbURL: "https://images.pexels.com/photos/1603901/pexels-photo-1603901.jpeg?auto=compress&cs=tinysrgb&w=400",
				Caption:  "Coq au Vin",
			},
		},
		FeaturedImage: "https://images.pexels.com/photos/205961/pexels-photo-205961.jpeg",
		OpeningHours:  "7:00 AM - 8:00 PM",
		PhoneNumbers:  "+33 1-23-45-67-89",
		Highlights:    []string{"Outdoor Seating", "Pastries", "Wine Selection"},
	},
	{
		Name:        "Mediterranean Oasis",
		Description: "Fresh Mediterranean cuisine featuring mezze platters, kebabs, and seafood dishes made with locally sourced ingredients.",
		Location: domain.Location{
			Address:     "505 Olive Avenue",
			Locality:    "Seaside",
			City:        "Athens",
			Country:     "Greece",
			Coordinates: domain.NewGeoPoint(23.7275, 37.9838),
		},
		Cuisines:          []string{"Mediterranean", "Greek", "Seafood"},
		AverageCostForTwo: 55,
		Currency:          "€",
		HasTableBooking:   true,
		PriceRange:        3,
		UserRating:        domain.UserRating{AggregateRating: 4.8, RatingText: "Excellent", Votes: 2134},
		Photos: []domain.Photo{
			{
				URL:      "https://images.pexels.com/photos/1211887/pexels-photo-1211887.jpeg",
				ThumbURL: "https://images.pexels.com/photos/1211887/pexels-photo-1211887.jpeg?auto=compress&cs=tinysrgb&w=400",
				Caption:  "Greek Salad",
			},
			{
				URL:      "https://images.pexels.com/photos/8969237/pexels-photo-8969237.jpeg",
				ThumbURL: "https://images.pexels.com/photos/8969237/pexels-photo-8969237.jpeg?auto=compress&cs=tinysrgb&w=400",
				Caption:  "Mezze Platter",
			},
		},
		FeaturedImage: "https://images.pexels.com/photos/1211887/pexels-photo-1211887.jpeg",
		OpeningHours:  "12:00 PM - 11:00 PM",
		PhoneNumbers:  "+30 21-0123-4567",
		Highlights:    []string{"Seaside View", "Fresh Seafood", "Outdoor Dining"},
	},
	{
		Name:        "Dragon Wok",
		Description: "Authentic Chinese cuisine specializing in hand-pulled noodles, dim sum, and traditional stir-fry dishes.",
		Location: domain.Location{
			Address:     "606 Dumpling Drive",
			Locality:    "Chinatown",
			City:        "Beijing",
			Country:     "China",
			Coordinates: domain.NewGeoPoint(116.4074, 39.9042),
		},
		Cuisines:          []string{"Chinese", "Dim Sum", "Noodles"},
		AverageCostForTwo: 200,
		Currency:          "¥",
		HasOnlineDelivery: true,
		IsDeliveringNow:   true,
		HasTableBooking:   true,
		PriceRange:        2,
		UserRating:        domain.UserRating{AggregateRating: 4.4, RatingText: "Very Good", Votes: 1765},
		Photos: []domain.Photo{
			{
				URL:      "https://images.pexels.com/photos/955137/pexels-photo-955137.jpeg",
				ThumbURL: "https://images.pexels.com/photos/955137/pexels-photo-955137.jpeg?auto=compress&cs=tinysrgb&w=400",
				Caption:  "Dim Sum",
			},
			{
				URL:      "https://images.pexels.com/photos/1731535/pexels-photo-1731535.jpeg",
				ThumbURL: "https://images.pexels.com/photos/1731535/pexels-photo-1731535.jpeg?auto=compress&cs=tinysrgb&w=400",
				Caption:  "Hand-Pulled Noodles",
			},
		},
		FeaturedImage: "https://images.pexels.com/photos/955137/pexels-photo-955137.jpeg",
		OpeningHours:  "11:00 AM - 10:00 PM",
		PhoneNumbers:  "+86 10-1234-5678",
		Highlights:    []string{"Family Style", "Tea Selection", "Chef Specials"},
	},
	{
		Name:        "Tandoori Nights",
		Description: "Northern Indian restaurant specializing in tandoori dishes, curries, and fresh-baked naan bread.",
		Location: domain.Location{
			Address:     "707 Curry Court",
			Locality:    "Little India",
			City:        "New Delhi",
			Country:     "India",
			Coordinates: domain.NewGeoPoint(77.2090, 28.6139),
		},
		Cuisines:          []string{"North Indian", "Tandoori", "Curry"},
		AverageCostForTwo: 1200,
		Currency:          "₹",
		HasOnlineDelivery: true,
		IsDeliveringNow:   true,
		HasTableBooking:   true,
		PriceRange:        3,
		UserRating:        domain.UserRating{AggregateRating: 4.7, RatingText: "Excellent", Votes: 2356},
		Photos: []domain.Photo{
			{
				URL:      "https://images.pexels.com/photos/7625056/pexels-photo-7625056.jpeg",
				ThumbURL: "https://images.pexels.com/photos/7625056/pexels-photo-7625056.jpeg?auto=compress&cs=tinysrgb&w=400",
				Caption:  "Tandoori Chicken",
			},
			{
				URL:      "https://images.pexels.com/photos/2474658/pexels-photo-2474658.jpeg",
				ThumbURL: "https://images.pexels.com/photos/2474658/pexels-photo-2474658.jpeg?auto=compress&cs=tinysrgb&w=400",
				Caption:  "Garlic Naan",
			},
		},
		FeaturedImage: "https://images.pexels.com/photos/7625056/pexels-photo-7625056.jpeg",
		OpeningHours:  "12:00 PM - 11:00 PM",
		PhoneNumbers:  "+91 11-2345-6789",
		Highlights:    []string{"Lunch Buffet", "Vegan Options", "Clay Oven"},
	},
}
