package navigation

// Path-path kanonik storefront. Navigasi tetap dilakukan client; BFF hanya
// mengirim path tujuan dalam payload redirect.
const (
	PathHome     = "/"
	PathLogin    = "/login"
	PathRegister = "/register"
	PathCheckout = "/checkout"
)

type Redirect struct {
	To string `json:"redirect"`
}
