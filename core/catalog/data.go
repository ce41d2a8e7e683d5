package catalog

// The directory content is fixed at build time; there is no backing store
// for catalog data.

var sports = []string{
	"Cricket", "Football", "Basketball", "Chess", "Hockey",
	"Tennis", "Badminton", "Table Tennis", "Volleyball", "Swimming",
}

var states = map[string][]string{
	"Delhi":         {"New Delhi", "Noida", "Gurgaon", "Faridabad", "Ghaziabad"},
	"Maharashtra":   {"Mumbai", "Pune", "Nagpur", "Nashik", "Thane"},
	"Karnataka":     {"Bangalore", "Mysore", "Hubli", "Mangalore"},
	"West Bengal":   {"Kolkata", "Howrah", "Durgapur"},
	"Tamil Nadu":    {"Chennai", "Coimbatore", "Madurai"},
	"Telangana":     {"Hyderabad", "Warangal", "Karimnagar"},
	"Gujarat":       {"Ahmedabad", "Surat", "Vadodara"},
	"Rajasthan":     {"Jaipur", "Jodhpur", "Udaipur"},
	"Uttar Pradesh": {"Lucknow", "Kanpur", "Varanasi"},
	"Punjab":        {"Chandigarh", "Ludhiana", "Amritsar"},
}

// academies keyed by sport, then state
var academies = map[string]map[string][]Academy{
	"Cricket": {
		"Delhi": {
			{
				Name: "Delhi Cricket Academy", Rating: 4.7, Coach: "Rahul Sharma", Established: 2005,
				Facilities: []string{"3 grounds", "Indoor nets", "Gym", "Swimming pool"},
				Address:    "123 Sports Complex, New Delhi",
				Contact:    "011-23456789",
				Fees:       "₹15,000 per quarter",
				Timings:    "6:00 AM - 9:00 AM, 4:00 PM - 7:00 PM",
			},
			{
				Name: "National Cricket Center", Rating: 4.9, Coach: "Vikram Rathore", Established: 1998,
				Facilities: []string{"5 grounds", "Swimming pool", "Hostel", "Cafeteria", "Physiotherapy center"},
				Address:    "National Stadium Road, Delhi",
				Contact:    "011-34567890",
				Fees:       "₹25,000 per quarter",
				Timings:    "5:30 AM - 8:30 AM, 3:30 PM - 6:30 PM",
			},
		},
		"Maharashtra": {
			{
				Name: "Mumbai Cricket Club", Rating: 4.8, Coach: "Sanjay Bangar", Established: 2001,
				Facilities: []string{"2 grounds", "Indoor nets", "Gym"},
				Address:    "Marine Drive, Mumbai",
				Contact:    "022-45678901",
				Fees:       "₹18,000 per quarter",
				Timings:    "6:00 AM - 9:00 AM, 4:00 PM - 7:00 PM",
			},
			{
				Name: "Pune Sports Academy", Rating: 4.5, Coach: "Hrishikesh Kanitkar", Established: 2010,
				Facilities: []string{"3 grounds", "Gym", "Swimming pool"},
				Address:    "University Road, Pune",
				Contact:    "020-56789012",
				Fees:       "₹12,000 per quarter",
				Timings:    "6:30 AM - 9:30 AM, 4:30 PM - 7:30 PM",
			},
		},
		"Karnataka": {
			{
				Name: "Bangalore Cricket Institute", Rating: 4.6, Coach: "Venkatesh Prasad", Established: 2003,
				Facilities: []string{"4 grounds", "Hostel", "Gym", "Cafeteria"},
				Address:    "MG Road, Bangalore",
				Contact:    "080-67890123",
				Fees:       "₹20,000 per quarter",
				Timings:    "6:00 AM - 9:00 AM, 4:00 PM - 7:00 PM",
			},
		},
	},
	"Football": {
		"Delhi": {
			{
				Name: "Delhi Football School", Rating: 4.3, Coach: "Clifford Miranda", Established: 2007,
				Facilities: []string{"Full-size pitch", "Gym", "Changing rooms"},
				Address:    "Dwarka Sports Complex, Delhi",
				Contact:    "011-78901234",
				Fees:       "₹10,000 per quarter",
				Timings:    "5:00 AM - 8:00 AM, 3:00 PM - 6:00 PM",
			},
			{
				Name: "Soccer Excellence", Rating: 4.4, Coach: "Bhaichung Bhutia", Established: 2012,
				Facilities: []string{"2 pitches", "Hostel", "Gym", "Cafeteria"},
				Address:    "Greater Kailash, Delhi",
				Contact:    "011-89012345",
				Fees:       "₹15,000 per quarter",
				Timings:    "5:30 AM - 8:30 AM, 3:30 PM - 6:30 PM",
			},
		},
		"Maharashtra": {
			{
				Name: "Mumbai Football Academy", Rating: 4.5, Coach: "Derrick Pereira", Established: 2005,
				Facilities: []string{"Full-size pitch", "Swimming pool", "Gym"},
				Address:    "Andheri Sports Complex, Mumbai",
				Contact:    "022-90123456",
				Fees:       "₹12,000 per quarter",
				Timings:    "5:00 AM - 8:00 AM, 4:00 PM - 7:00 PM",
			},
		},
		"West Bengal": {
			{
				Name: "Kolkata Football Club", Rating: 4.7, Coach: "Subrata Bhattacharya", Established: 1995,
				Facilities: []string{"3 pitches", "Hostel", "Gym", "Medical center"},
				Address:    "Salt Lake Stadium, Kolkata",
				Contact:    "033-01234567",
				Fees:       "₹8,000 per quarter",
				Timings:    "5:30 AM - 8:30 AM, 3:30 PM - 6:30 PM",
			},
		},
	},
	"Basketball": {
		"Delhi": {
			{
				Name: "Delhi Basketball Academy", Rating: 4.2, Coach: "Ajmer Singh", Established: 2008,
				Facilities: []string{"3 courts", "Gym", "Changing rooms"},
				Address:    "Thyagaraj Stadium, Delhi",
				Contact:    "011-12345678",
				Fees:       "₹9,000 per quarter",
				Timings:    "6:00 AM - 9:00 AM, 4:00 PM - 7:00 PM",
			},
		},
		"Karnataka": {
			{
				Name: "Bangalore Basketball Center", Rating: 4.4, Coach: "Prashanti Singh", Established: 2011,
				Facilities: []string{"4 courts", "Gym", "Hostel"},
				Address:    "Koramangala, Bangalore",
				Contact:    "080-23456789",
				Fees:       "₹11,000 per quarter",
				Timings:    "6:30 AM - 9:30 AM, 4:30 PM - 7:30 PM",
			},
		},
	},
	"Chess": {
		"Delhi": {
			{
				Name: "Delhi Chess Club", Rating: 4.8, Coach: "RB Ramesh", Established: 2000,
				Facilities: []string{"Air-conditioned halls", "Library", "Analysis rooms"},
				Address:    "Connaught Place, Delhi",
				Contact:    "011-34567890",
				Fees:       "₹6,000 per quarter",
				Timings:    "9:00 AM - 9:00 PM",
			},
		},
		"Tamil Nadu": {
			{
				Name: "Chennai Chess Academy", Rating: 4.7, Coach: "Viswanathan Anand", Established: 2005,
				Facilities: []string{"Air-conditioned halls", "Digital analysis boards", "Library"},
				Address:    "Nungambakkam, Chennai",
				Contact:    "044-45678901",
				Fees:       "₹7,500 per quarter",
				Timings:    "10:00 AM - 8:00 PM",
			},
		},
	},
	"Hockey": {
		"Delhi": {
			{
				Name: "Delhi Hockey Academy", Rating: 4.5, Coach: "Dhanraj Pillay", Established: 2003,
				Facilities: []string{"2 astroturf pitches", "Gym", "Hostel"},
				Address:    "National Stadium, Delhi",
				Contact:    "011-56789012",
				Fees:       "₹12,000 per quarter",
				Timings:    "5:30 AM - 8:30 AM, 4:30 PM - 7:30 PM",
			},
		},
		"Maharashtra": {
			{
				Name: "Mumbai Hockey Club", Rating: 4.3, Coach: "Viren Rasquinha", Established: 2007,
				Facilities: []string{"Astroturf pitch", "Gym", "Changing rooms"},
				Address:    "Mahalaxmi, Mumbai",
				Contact:    "022-67890123",
				Fees:       "₹10,000 per quarter",
				Timings:    "6:00 AM - 9:00 AM, 4:00 PM - 7:00 PM",
			},
		},
	},
}

var courses = []*Course{
	{
		ID: 1, Title: "Fundamentals of Sports Training", Price: 799, Duration: "4 weeks",
		Instructor: "Professional Coach", Sport: "General",
		Description: "Learn the basic principles of sports training, nutrition, and injury prevention. This course is perfect for beginners who want to understand the fundamentals of athletic training.",
		Modules: []string{"Introduction to Sports Science", "Basic Training Principles", "Nutrition Basics",
			"Injury Prevention", "Recovery Techniques"},
		Students: 1245, Rating: 4.5,
	},
	{
		ID: 2, Title: "Advanced Cricket Techniques", Price: 1299, Duration: "8 weeks",
		Instructor: "International Player", Sport: "Cricket",
		Description: "Master advanced batting, bowling and fielding techniques with professional guidance from former international players. Includes video analysis of your technique.",
		Modules: []string{"Advanced Batting", "Fast Bowling Techniques", "Spin Bowling Variations", "Fielding Drills",
			"Match Situations", "Mental Toughness"},
		Students: 876, Rating: 4.7,
	},
	{
		ID: 3, Title: "Football Strategy Masterclass", Price: 999, Duration: "6 weeks",
		Instructor: "Pro Football Coach", Sport: "Football",
		Description: "Learn advanced tactics and strategies from professional football coaches. Includes video analysis of professional matches.",
		Modules: []string{"Formations and Systems", "Set Piece Strategies", "Pressing Techniques", "Counter Attacks",
			"Defensive Organization"},
		Students: 654, Rating: 4.6,
	},
	{
		ID: 4, Title: "Basketball Skills Development", Price: 899, Duration: "5 weeks",
		Instructor: "NBA Trainer", Sport: "Basketball",
		Description: "Develop your basketball skills with training methods used by professional players. Includes personalized feedback on your game.",
		Modules:  []string{"Shooting Techniques", "Ball Handling", "Defensive Moves", "Rebounding", "Game IQ"},
		Students: 432, Rating: 4.4,
	},
	{
		ID: 5, Title: "Chess Grandmaster Training", Price: 1499, Duration: "10 weeks",
		Instructor: "Grandmaster", Sport: "Chess",
		Description: "Learn advanced chess strategies from a grandmaster. Includes analysis of your games and personalized training plan.",
		Modules: []string{"Opening Repertoire", "Middle Game Strategies", "Endgame Techniques", "Tactical Patterns",
			"Time Management"},
		Students: 765, Rating: 4.8,
	},
}

var webinars = []*Webinar{
	{
		ID: 1, Title: "Sports Nutrition for Peak Performance", Price: 399,
		Date: "Wednesday, 15th March 2023", Time: "6:00 PM - 7:00 PM", Duration: "1 hour",
		Instructor:  "Dr. Anjali Sharma (Sports Dietician)",
		Description: "Learn about optimal nutrition for athletes and how to fuel your performance. Includes Q&A session with the dietician.",
		Seats:       100, registered: 78,
	},
	{
		ID: 2, Title: "Mental Toughness in Sports", Price: 349,
		Date: "Friday, 17th March 2023", Time: "7:00 PM - 8:00 PM", Duration: "1 hour",
		Instructor:  "Sports Psychologist",
		Description: "Develop mental resilience and learn techniques to handle pressure in competitive situations.",
		Seats:       100, registered: 65,
	},
	{
		ID: 3, Title: "Injury Prevention and Recovery", Price: 349,
		Date: "Saturday, 18th March 2023", Time: "5:00 PM - 6:00 PM", Duration: "1 hour",
		Instructor:  "Physiotherapist",
		Description: "Learn how to prevent common sports injuries and proper recovery techniques.",
		Seats:       100, registered: 53,
	},
	{
		ID: 4, Title: "Strength and Conditioning for Athletes", Price: 449,
		Date: "Tuesday, 21st March 2023", Time: "6:30 PM - 7:30 PM", Duration: "1 hour",
		Instructor:  "Strength Coach",
		Description: "Learn proper strength training techniques tailored for your sport.",
		Seats:       100, registered: 42,
	},
}

var equipment = []*Equipment{
	{
		ID: 1, Name: "Cricket Bat (MRF Genius Grand Edition)", Price: 3499, Category: "Cricket", Discount: 15,
		Description: "Premium English willow cricket bat with perfect weight balance",
		Stock:       25, Rating: 4.7,
	},
	{
		ID: 2, Name: "Football (Nike Premier League)", Price: 1999, Category: "Football", Discount: 10,
		Description: "Official match ball with high-performance texture",
		Stock:       40, Rating: 4.5,
	},
	{
		ID: 3, Name: "Basketball (Spalding NBA Official)", Price: 2499, Category: "Basketball", Discount: 12,
		Description: "Official NBA game ball with premium composite leather",
		Stock:       30, Rating: 4.6,
	},
	{
		ID: 4, Name: "Chess Set (Staunton Tournament)", Price: 1299, Category: "Chess", Discount: 5,
		Description: "Professional tournament chess set with 3.75\" king",
		Stock:       50, Rating: 4.8,
	},
	{
		ID: 5, Name: "Hockey Stick (Adidas X Series)", Price: 2799, Category: "Hockey", Discount: 8,
		Description: "Carbon fiber hockey stick with optimal bow for power and control",
		Stock:       20, Rating: 4.4,
	},
}
