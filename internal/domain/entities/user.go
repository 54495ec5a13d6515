package entities

// Role places a user on one side of the marketplace.
//
// Domain notes:
//   - Requesters publish service requests and pick a winning quote.
//   - Service providers submit quotes against published requests.
//   - Supply providers sell supplies and bundle them into packs.
type Role string

const (
	RoleRequester       Role = "REQUESTER"
	RoleServiceProvider Role = "SERVICE_PROVIDER"
	RoleSupplyProvider  Role = "SUPPLY_PROVIDER"
)

// User is a credentialed marketplace account.
//
// PasswordHash is a bcrypt hash; it stays inside the users collection
// and is never mapped onto a response DTO.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
}
