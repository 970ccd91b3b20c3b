package search

import "github.com/FACorreiaa/go-study-spaces/internal/types"

// sampleResults is the built-in data set used when search.source is
// "sample". Coordinates are real; there are no precomputed distances.
var sampleResults = []types.SearchResult{
	{
		ID:          "sample-high-park",
		Name:        "High Park",
		Type:        types.CategoryGreenSpace,
		Description: "Toronto's largest public park, with trails, gardens and quiet spots under the oaks",
		Coordinates: [2]float64{43.6465, -79.4637},
		Features:    []string{"Trails", "Gardens", "Picnic tables", "Quiet areas"},
		Address:     "1873 Bloor St W",
	},
	{
		ID:          "sample-queens-park",
		Name:        "Queen's Park",
		Type:        types.CategoryPark,
		Description: "quiet park with trees beside the university campus",
		Coordinates: [2]float64{43.6640, -79.3925},
		Features:    []string{"Shade trees", "Benches", "Statues"},
		Address:     "111 Wellesley St W",
	},
	{
		ID:          "sample-trinity-bellwoods",
		Name:        "Trinity Bellwoods Park",
		Type:        types.CategoryPark,
		Description: "Neighbourhood park with open lawns and shaded benches",
		Coordinates: [2]float64{43.6473, -79.4148},
		Features:    []string{"Benches", "Washrooms", "Off-leash area"},
		Address:     "790 Queen St W",
	},
	{
		ID:          "sample-music-garden",
		Name:        "Toronto Music Garden",
		Type:        types.CategoryGreenSpace,
		Description: "Waterfront garden laid out after Bach's first cello suite",
		Coordinates: [2]float64{43.6372, -79.3948},
		Features:    []string{"Waterfront", "Gardens", "Benches"},
		Address:     "479 Queens Quay W",
	},
	{
		ID:          "sample-brick-works",
		Name:        "Evergreen Brick Works",
		Type:        types.CategoryGreenSpace,
		Description: "Former quarry turned park, ponds and a weekend market",
		Coordinates: [2]float64{43.6846, -79.3653},
		Features:    []string{"Ponds", "Trails", "Market"},
		Address:     "550 Bayview Ave",
	},
	{
		ID:          "sample-reference-library",
		Name:        "Toronto Reference Library",
		Type:        types.CategoryWifi,
		Description: "Free public Wi-Fi across five floors of study space",
		Coordinates: [2]float64{43.6719, -79.3868},
		Features:    []string{"Free Wi-Fi", "Power outlets", "Study carrels"},
		Address:     "789 Yonge St",
	},
	{
		ID:          "sample-nathan-phillips",
		Name:        "Nathan Phillips Square",
		Type:        types.CategoryWifi,
		Description: "Public Wi-Fi hotspot on the civic square",
		Coordinates: [2]float64{43.6525, -79.3835},
		Features:    []string{"Free Wi-Fi", "Outdoor seating"},
		Address:     "100 Queen St W",
	},
	{
		ID:          "sample-balzacs",
		Name:        "Balzac's Coffee Roasters",
		Type:        types.CategoryCafe,
		Description: "Cafe in a heritage building in the Distillery District, good coffee and Wi-Fi",
		Coordinates: [2]float64{43.6503, -79.3596},
		Features:    []string{"Wi-Fi", "Indoor seating", "Pastries"},
		Address:     "1 Trinity St",
	},
	{
		ID:          "sample-dark-horse",
		Name:        "Dark Horse Espresso Bar",
		Type:        types.CategoryCafe,
		Description: "Spacious espresso bar, long communal tables popular for studying",
		Coordinates: [2]float64{43.6486, -79.3958},
		Features:    []string{"Wi-Fi", "Power outlets", "Communal tables"},
		Address:     "215 Spadina Ave",
	},
	{
		ID:          "sample-pilot",
		Name:        "Pilot Coffee Roasters",
		Type:        types.CategoryCafe,
		Description: "Specialty roastery and tasting bar in Leslieville",
		Coordinates: [2]float64{43.6640, -79.3330},
		Features:    []string{"Wi-Fi", "Specialty coffee"},
		Address:     "50 Wagstaff Dr",
	},
	{
		ID:          "sample-harbourfront-bench",
		Name:        "Harbourfront Bench",
		Type:        types.CategoryBench,
		Description: "Bench facing the lake along the boardwalk",
		Coordinates: [2]float64{43.6387, -79.3816},
		Features:    []string{"Lake view", "Seating"},
		Address:     "235 Queens Quay W",
	},
	{
		ID:          "sample-grange-bench",
		Name:        "Grange Park Bench",
		Type:        types.CategoryBench,
		Description: "Shaded bench beside the playground behind the AGO",
		Coordinates: [2]float64{43.6529, -79.3923},
		Features:    []string{"Shade", "Seating"},
		Address:     "26 Grange Rd",
	},
	{
		ID:          "sample-ossington-green-street",
		Name:        "Ossington Avenue Green Street",
		Type:        types.CategoryGreenStreet,
		Description: "Tree-lined street, bioswales and planters",
		Coordinates: [2]float64{43.6550, -79.4216},
		Features:    []string{"Street trees", "Planters"},
	},
}
