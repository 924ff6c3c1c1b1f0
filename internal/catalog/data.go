package catalog

import "boardscout/server/internal/models"

var demoBillboards = []models.Billboard{
	{
		ID:        1,
		Location:  "Marine Drive, Mumbai",
		Address:   "Near NCPA, Marine Drive, Mumbai 400021",
		Latitude:  18.9438,
		Longitude: 72.8230,
		Price:     125000,
		PriceUnit: "week",
		Size: models.Size{
			Height: 12,
			Width:  40,
			Unit:   "feet",
		},
		Views:            "800K daily",
		DailyImpressions: 800000,
		Images: []string{
			"https://images.unsplash.com/photo-1555952517-2e8e729e0b44?q=80&w=2664&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1566552881560-0be862a7c445?q=80&w=2670&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1529253355930-ddbe423a2ac7?q=80&w=2665&auto=format&fit=crop",
		},
		Available:       true,
		Type:            "Digital",
		FacingDirection: "West",
		MinBookingDays:  7,
		Description: "Premium digital billboard on the iconic Marine Drive. Exceptional visibility with high " +
			"exposure to affluent residents and tourists along the Queen's Necklace. Perfect for luxury brands " +
			"and high-end products seeking to make an impact in Mumbai's most prestigious location.",
		Features: []string{
			"High resolution LED display",
			"24/7 operation with peak brightness control",
			"Premium location with high traffic",
			"Tourist hotspot",
			"Multiple ad slots available",
			"Weather resistant technology",
			"Real-time content updates possible",
		},
		NearbyAttractions: []string{
			"Nariman Point",
			"Wankhede Stadium",
			"NCPA",
			"Gateway of India",
			"Taj Mahal Palace Hotel",
		},
		Owner: models.Owner{
			Name:     "Mumbai Outdoor Media Ltd.",
			Phone:    "(022) 2285-4321",
			Email:    "bookings@mumbaioutdoormedia.com",
			Response: "Usually responds within 24 hours",
		},
	},
	{
		ID:        2,
		Location:  "Linking Road, Bandra",
		Address:   "Near Linking Road Junction, Bandra West, Mumbai 400050",
		Latitude:  19.0633,
		Longitude: 72.8324,
		Price:     150000,
		PriceUnit: "week",
		Size: models.Size{
			Height: 15,
			Width:  45,
			Unit:   "feet",
		},
		Views:            "650K daily",
		DailyImpressions: 650000,
		Images: []string{
			"https://images.unsplash.com/photo-1533929736458-ca588d08c8be?q=80&w=2664&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1617470282896-8dc2cc9f9975?q=80&w=2670&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1616196334218-293bd5163dfc?q=80&w=2573&auto=format&fit=crop",
		},
		Available:       true,
		Type:            "Static",
		FacingDirection: "South",
		MinBookingDays:  14,
		Description: "Large format billboard in Mumbai's premier shopping district. High visibility to upscale " +
			"shoppers and young professionals in one of the city's trendiest areas. This location offers " +
			"exceptional exposure to fashion-forward consumers with high spending power.",
		Features: []string{
			"Illuminated 24/7",
			"Premium vinyl printing",
			"High visibility from multiple angles",
			"Fashion district location",
			"Celebrity hotspot",
			"Long-term discounts available",
		},
		NearbyAttractions: []string{
			"Bandra Bandstand",
			"Hill Road Shopping",
			"Carter Road Promenade",
			"Mehboob Studio",
			"Premium Brand Outlets",
		},
		Owner: models.Owner{
			Name:     "Bandra Media Solutions",
			Phone:    "(022) 2647-8900",
			Email:    "contact@bandramedia.in",
			Response: "Usually responds within 2 days",
		},
	},
	{
		ID:        3,
		Location:  "FC Road, Pune",
		Address:   "Near FC Road Junction, Pune 411005",
		Latitude:  18.5221,
		Longitude: 73.8403,
		Price:     80000,
		PriceUnit: "week",
		Size: models.Size{
			Height: 10,
			Width:  30,
			Unit:   "feet",
		},
		Views:            "480K daily",
		DailyImpressions: 480000,
		Images: []string{
			"https://images.unsplash.com/photo-1567956619902-9371b1c9879f?q=80&w=2660&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1561518776-e76a5e48f731?q=80&w=2673&auto=format&fit=crop",
		},
		Available:       true,
		Type:            "Static",
		FacingDirection: "East",
		MinBookingDays:  10,
		Description: "Prime billboard location on one of Pune's busiest shopping streets. High visibility to " +
			"college students, young professionals, and shoppers in the heart of the city.",
		Features: []string{
			"Illuminated 24/7",
			"Weather resistant material",
			"College area with high foot traffic",
			"Near popular restaurants and cafes",
			"Visible from major intersections",
		},
		NearbyAttractions: []string{
			"Fergusson College",
			"JM Road Shopping",
			"Deccan Gymkhana",
			"Balgandharva Rangmandir",
			"Cafes and Food Outlets",
		},
		Owner: models.Owner{
			Name:     "Pune Outdoor Advertising",
			Phone:    "(020) 2567-8900",
			Email:    "info@puneoutdoor.com",
			Response: "Usually responds within 24 hours",
		},
	},
	{
		ID:        4,
		Location:  "pune",
		Address:   "University Road, Pune 411007",
		Latitude:  18.5204,
		Longitude: 73.8567,
		Price:     10000,
		PriceUnit: "week",
		Size: models.Size{
			Height: 20,
			Width:  28,
			Unit:   "feet",
		},
		Views:            "200K daily",
		DailyImpressions: 200000,
		Images: []string{
			"https://images.unsplash.com/photo-1517832606299-7ae9b720a186?q=80&w=2670&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1514897575457-c4db467cf78e?q=80&w=2670&auto=format&fit=crop",
		},
		Available:       true,
		Type:            "Static",
		FacingDirection: "North",
		MinBookingDays:  7,
		Description: "Perfect billboard location for reaching the university audience. High visibility to " +
			"students, faculty and university visitors. Ideal for educational institutions, tech products, " +
			"and student-focused brands.",
		Features: []string{
			"Prime university location",
			"High foot traffic area",
			"Illuminated 24/7",
			"Weather resistant material",
			"Excellent viewing angle",
		},
		NearbyAttractions: []string{
			"University of Pune",
			"Symbiosis Institute",
			"Law College Road",
			"Bhandarkar Oriental Research Institute",
			"Savitribai Phule Pune University",
		},
		Owner: models.Owner{
			Name:     "Pune City Advertising",
			Phone:    "(020) 2567-1234",
			Email:    "contact@punecityads.com",
			Response: "Usually responds within 12 hours",
		},
	},
	{
		ID:        5,
		Location:  "pune",
		Address:   "Senapati Bapat Road, Pune 411016",
		Latitude:  18.5362,
		Longitude: 73.8213,
		Price:     2000,
		PriceUnit: "week",
		Size: models.Size{
			Height: 20,
			Width:  30,
			Unit:   "feet",
		},
		Views:            "200K daily",
		DailyImpressions: 200000,
		Images: []string{
			"https://images.unsplash.com/photo-1553260188-75a8d6205b6c?q=80&w=2680&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1581258624948-2c0a24aeefb1?q=80&w=2670&auto=format&fit=crop",
		},
		Available:       true,
		Type:            "Digital",
		FacingDirection: "South",
		MinBookingDays:  10,
		Description: "Premium digital billboard in Pune's business district. Excellent visibility to corporate " +
			"professionals, business travelers, and the city's affluent crowd. Perfect for luxury and " +
			"corporate brands.",
		Features: []string{
			"LED display",
			"Business district location",
			"High traffic intersection",
			"24/7 operation",
			"Visible from multiple angles",
		},
		NearbyAttractions: []string{
			"Landmark Corporate Towers",
			"Premium Hotels",
			"Luxury Shopping Centers",
			"Business District",
			"Fine Dining Restaurants",
		},
		Owner: models.Owner{
			Name:     "PuneTech Media Solutions",
			Phone:    "(020) 2589-8765",
			Email:    "business@punetech.media",
			Response: "Usually responds within 24 hours",
		},
	},
	{
		ID:        6,
		Location:  "Nagar",
		Address:   "MG Road, Ahmednagar 414001",
		Latitude:  19.0948,
		Longitude: 74.7380,
		Price:     4000,
		PriceUnit: "week",
		Size: models.Size{
			Height: 18,
			Width:  45,
			Unit:   "feet",
		},
		Views:            "200K daily",
		DailyImpressions: 200000,
		Images: []string{
			"https://images.unsplash.com/photo-1549317661-bd32c8ce0db2?q=80&w=2670&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1579033385971-a7bc8c5b2a5a?q=80&w=2664&auto=format&fit=crop",
		},
		Available:       true,
		Type:            "Static",
		FacingDirection: "East",
		MinBookingDays:  14,
		Description: "Strategically located billboard in the heart of Ahmednagar. Good position for maximum " +
			"visibility to both pedestrians and vehicular traffic. Ideal for local businesses and regional " +
			"campaigns.",
		Features: []string{
			"Central location",
			"Main road visibility",
			"Illuminated at night",
			"Weather resistant",
			"Long-term booking discounts available",
		},
		NearbyAttractions: []string{
			"Ahmednagar Fort",
			"District Court",
			"MG Road Market",
			"City Bus Station",
			"Government Offices",
		},
		Owner: models.Owner{
			Name:     "Nagar Advertising Solutions",
			Phone:    "(0241) 234-5678",
			Email:    "info@nagarads.com",
			Response: "Usually responds within 48 hours",
		},
	},
}
