package repository

// Repositories agrupa los puertos atados a una misma transacción.
type Repositories struct {
	Users      UserRepository
	Contacts   ContactRepository
	Addresses  AddressRepository
	Categories CategoryRepository
	Products   ProductRepository
}
