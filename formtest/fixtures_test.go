package formtest_test

import (
	"math/big"
	"time"
)

type Gender int

const (
	Male Gender = iota
	Female
)

func (g Gender) String() string {
	return [...]string{"MALE", "FEMALE"}[g]
}

type Address struct {
	StreetNumber int    `form:"streetNumber"`
	StreetName   string `form:"streetName"`
	PostalCode   int    `form:"postalCode"`
	City         string `form:"city"`
}

type Diploma struct {
	Name string    `form:"name"`
	Date time.Time `form:"date"`
}

type AddUserForm struct {
	FirstName                  string             `form:"firstName"`
	Name                       string             `form:"name"`
	IdentificationNumber       *big.Float         `form:"identificationNumber"`
	IdentificationNumberBigInt *big.Int           `form:"identificationNumberBigInt"`
	Gender                     *Gender            `form:"gender"`
	BirthDate                  *time.Time         `form:"birthDate"`
	CurrentAddress             *Address           `form:"currentAddress"`
	Usernames                  []string           `form:"usernames"`
	UsernamesArray             *[2]string         `form:"usernamesArray"`
	Diplomas                   []Diploma          `form:"diplomas"`
	FormerAddresses            []*Address         `form:"formerAddresses"`
	Metadatas                  map[string]*string `form:"metadatas"`
	DiplomasMap                map[string]Diploma `form:"diplomasMap"`
}

func newAddUserForm(firstName, name string, birthDate *time.Time, current *Address) *AddUserForm {
	return &AddUserForm{
		FirstName:      firstName,
		Name:           name,
		BirthDate:      birthDate,
		CurrentAddress: current,
	}
}

type Inner struct {
	Value string `form:"value"`
}

type ConfigurationForm struct {
	StaticName    string `form:"STATIC_NAME,static"`
	FinalName     string `form:"finalName,final"`
	Name          string `form:"name"`
	TransientName string `form:"transientName,transient"`
	Inner         *Inner `form:"inner"`
}

func newConfigurationForm() ConfigurationForm {
	return ConfigurationForm{
		StaticName:    "static name",
		FinalName:     "finalValue",
		Name:          "name",
		TransientName: "transient",
		Inner:         &Inner{Value: "inner"},
	}
}

func ptr[T any](v T) *T { return &v }
