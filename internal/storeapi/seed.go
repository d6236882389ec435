package storeapi

import "marketplace/internal/domain"

type account struct {
	password string
	profile  domain.Profile
}

func seedProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Title: "Fjallraven - Foldsack No. 1 Backpack, Fits 15 Laptops", Price: 109.95, Category: "men's clothing",
			Description: "Your perfect pack for everyday use and walks in the forest.",
			Image:       "https://fakestoreapi.com/img/81fPKd-2AYL._AC_SL1500_.jpg", Rating: domain.Rating{Rate: 3.9, Count: 120}},
		{ID: 2, Title: "Mens Casual Premium Slim Fit T-Shirts", Price: 22.3, Category: "men's clothing",
			Description: "Slim-fitting style, contrast raglan long sleeve, three-button henley placket.",
			Image:       "https://fakestoreapi.com/img/71-3HjGNDUL._AC_SY879._SX._UX._SY._UY_.jpg", Rating: domain.Rating{Rate: 4.1, Count: 259}},
		{ID: 3, Title: "Mens Cotton Jacket", Price: 55.99, Category: "men's clothing",
			Description: "Great outerwear jackets for Spring, Autumn and Winter.",
			Image:       "https://fakestoreapi.com/img/71li-ujtlUL._AC_UX679_.jpg", Rating: domain.Rating{Rate: 4.7, Count: 500}},
		{ID: 5, Title: "John Hardy Women's Legends Naga Gold & Silver Dragon Station Chain Bracelet", Price: 695, Category: "jewelery",
			Description: "From our Legends Collection, the Naga was inspired by the mythical water dragon.",
			Image:       "https://fakestoreapi.com/img/71pWzhdJNwL._AC_UL640_QL65_ML3_.jpg", Rating: domain.Rating{Rate: 4.6, Count: 400}},
		{ID: 6, Title: "Solid Gold Petite Micropave", Price: 168, Category: "jewelery",
			Description: "Satisfaction Guaranteed. Return or exchange any order within 30 days.",
			Image:       "https://fakestoreapi.com/img/61sbMiUnoGL._AC_UL640_QL65_ML3_.jpg", Rating: domain.Rating{Rate: 3.9, Count: 70}},
		{ID: 9, Title: "WD 2TB Elements Portable External Hard Drive - USB 3.0", Price: 64, Category: "electronics",
			Description: "USB 3.0 and USB 2.0 compatibility, fast data transfers.",
			Image:       "https://fakestoreapi.com/img/61IBBVJvSDL._AC_SY879_.jpg", Rating: domain.Rating{Rate: 3.3, Count: 203}},
		{ID: 14, Title: "Samsung 49-Inch CHG90 144Hz Curved Gaming Monitor", Price: 999.99, Category: "electronics",
			Description: "49 inch super ultrawide 32:9 curved gaming monitor with dual 27 inch screen side by side.",
			Image:       "https://fakestoreapi.com/img/81Zt42ioCgL._AC_SX679_.jpg", Rating: domain.Rating{Rate: 2.2, Count: 140}},
		{ID: 18, Title: "MBJ Women's Solid Short Sleeve Boat Neck V", Price: 9.85, Category: "women's clothing",
			Description: "95% rayon 5% spandex, made in USA or imported.",
			Image:       "https://fakestoreapi.com/img/71z3kpMAYsL._AC_UY879_.jpg", Rating: domain.Rating{Rate: 4.7, Count: 130}},
	}
}

func seedAccounts() map[string]account {
	type row struct {
		id                  domain.UserID
		user, pass          string
		first, last, email  string
		city, street, phone string
		number              int
		zip                 string
	}
	rows := []row{
		{1, "johnd", "m38rmF$", "john", "doe", "john@gmail.com", "kilcoole", "new road", "1-570-236-7033", 7682, "12926-3874"},
		{2, "david", "morrison", "david", "morrison", "morrison@gmail.com", "kilcoole", "Lovers Ln", "1-570-236-7033", 7267, "12926-3874"},
		{3, "kevinryan", "kev02937@", "kevin", "ryan", "kevin@gmail.com", "Cullman", "Frances Ct", "1-567-094-1345", 86, "29567-1452"},
		{4, "donero", "ewedon", "don", "romer", "don@gmail.com", "San Antonio", "Hunters Creek Dr", "1-765-789-6734", 6454, "98234-1734"},
		{5, "derek", "jklg*_56", "derek", "powell", "derek@gmail.com", "san Antonio", "adams St", "1-956-001-1945", 245, "80796-1234"},
		{6, "david_r", "3478*#54", "david", "russell", "david_r@gmail.com", "el paso", "prospect st", "1-678-345-9856", 124, "12346-0456"},
		{7, "snyder", "f238&@*$", "miriam", "snyder", "miriam@gmail.com", "fresno", "saddle st", "1-123-943-0563", 1342, "96378-0245"},
		{8, "hopkins", "William56$hj", "william", "hopkins", "william@gmail.com", "mesa", "vally view ln", "1-478-001-0890", 1342, "96378-0245"},
		{9, "kate_h", "kfejk@*_", "kate", "hale", "kate@gmail.com", "miami", "avondale ave", "1-678-456-1934", 345, "96378-0245"},
		{10, "jimmie_k", "klein*#%*", "jimmie", "klein", "jimmie@gmail.com", "fort wayne", "oak lawn ave", "1-104-001-4567", 526, "10256-4532"},
	}
	out := make(map[string]account, len(rows))
	for _, r := range rows {
		out[r.user] = account{password: r.pass, profile: domain.Profile{
			ID: r.id, Username: r.user, Email: r.email, Phone: r.phone,
			Name: domain.ProfileName{First: r.first, Last: r.last},
			Address: domain.Address{City: r.city, Street: r.street, Number: r.number, Zipcode: r.zip,
				Geo: domain.Geolocation{Lat: "-37.3159", Long: "81.1496"}},
		}}
	}
	return out
}
