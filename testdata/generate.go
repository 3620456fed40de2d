package main

import (
	"log"
	"os"

	"github.com/segmentio/parquet-go"
)

type User struct {
	Name  string  `parquet:"name"`
	Age   int32   `parquet:"age"`
	Email string  `parquet:"email"`
	Score float64 `parquet:"score"`
}

func main() {
	users := []User{
		{Name: "Alice", Age: 30, Email: "alice@example.com", Score: 95.5},
		{Name: "Bob", Age: 25, Email: "", Score: 82.3},
		{Name: "charlie", Age: 35, Email: "charlie@example.com", Score: 88.7},
		{Name: "diana", Age: 28, Email: "diana@example.com", Score: 91.2},
		{Name: "eve", Age: 42, Email: "", Score: 76.8},
	}

	file, err := os.Create("users.parquet")
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[User](file)
	defer writer.Close()

	if _, err := writer.Write(users); err != nil {
		log.Fatal(err)
	}

	log.Println("Generated users.parquet with 5 users")
}
