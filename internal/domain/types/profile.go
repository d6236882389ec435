package types

// Profile is the signed-in user's account details.
type Profile struct {
	ID       UserID      `json:"id" yaml:"id"`
	Username string      `json:"username" yaml:"username"`
	Email    string      `json:"email" yaml:"email"`
	Phone    string      `json:"phone" yaml:"phone"`
	Name     ProfileName `json:"name" yaml:"name"`
	Address  Address     `json:"address" yaml:"address"`
}

// ProfileName is a person's given and family name.
type ProfileName struct {
	First string `json:"firstname" yaml:"firstname"`
	Last  string `json:"lastname" yaml:"lastname"`
}

// Full returns "First Last", trimmed.
func (n ProfileName) Full() string {
	switch {
	case n.First == "":
		return n.Last
	case n.Last == "":
		return n.First
	}
	return n.First + " " + n.Last
}

// Address is a postal address with coordinates.
type Address struct {
	City    string      `json:"city" yaml:"city"`
	Street  string      `json:"street" yaml:"street"`
	Number  int         `json:"number" yaml:"number"`
	Zipcode string      `json:"zipcode" yaml:"zipcode"`
	Geo     Geolocation `json:"geolocation" yaml:"geolocation"`
}

// Geolocation is kept as the API's strings.
type Geolocation struct {
	Lat  string `json:"lat" yaml:"lat"`
	Long string `json:"long" yaml:"long"`
}
