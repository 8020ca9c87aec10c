package main

import (
	"fmt"

	"github.com/nicolasmmb/scopenv"
)

var schema = scopenv.Schema{
	"PORT": scopenv.Number(),
	"HOST": scopenv.String().Optional(),

	"DATABASE_URL": scopenv.String().Secret(),

	"DEBUG": scopenv.Bool().Optional(),
}

func main() {
	m, err := scopenv.New(schema, scopenv.Env())
	if err != nil {
		panic(err)
	}

	scopenv.Print(m)

	data := m.Data()
	host, ok := data.String("HOST")
	if !ok {
		host = "0.0.0.0"
	}
	port, _ := data.Number("PORT")

	fmt.Printf("\nServer starting on %s:%v\n", host, port)
}
