package auth

import "math/rand/v2"

// Credentials is a username and password pair.
type Credentials struct {
	Username string
	Password string
}

// DemoAccounts are the public accounts of the fake store.
var DemoAccounts = []Credentials{
	{"johnd", "m38rmF$"},
	{"david", "morrison"},
	{"kevinryan", "kev02937@"},
	{"donero", "ewedon"},
	{"derek", "jklg*_56"},
	{"david_r", "3478*#54"},
	{"snyder", "f238&@*$"},
	{"hopkins", "William56$hj"},
	{"kate_h", "kfejk@*_"},
	{"jimmie_k", "klein*#%*"},
}

// DemoCredentials picks one demo account at random.
func DemoCredentials() Credentials {
	return DemoAccounts[rand.IntN(len(DemoAccounts))]
}
