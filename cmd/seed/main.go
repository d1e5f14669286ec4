package main

import (
	"log"
	"os"
	"time"

	"invoicing-be/internal/model"
	"invoicing-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type seedItem struct {
	name     string
	quantity int
	price    float64
}

type seedInvoice struct {
	clientName  string
	clientEmail string
	status      string
	terms       int
	description string
	sender      model.Address
	client      model.Address
	items       []seedItem
}

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	var existing int64
	db.Model(&model.Invoice{}).Count(&existing)
	if existing > 0 {
		color.Yellow("Invoices already present (%d rows), skipping seed.", existing)
		return
	}

	seeds := []seedInvoice{
		{
			clientName:  "Jensen Huang",
			clientEmail: "jensenh@mail.com",
			status:      "paid",
			terms:       30,
			description: "Graphic Design",
			sender:      model.Address{Street: "19 Union Terrace", City: "London", PostCode: "E1 3EZ", Country: "United Kingdom"},
			client:      model.Address{Street: "106 Kendell Street", City: "Sharrington", PostCode: "NR24 5WQ", Country: "United Kingdom"},
			items: []seedItem{
				{name: "Banner Design", quantity: 1, price: 156.00},
				{name: "Email Design", quantity: 2, price: 200.00},
			},
		},
		{
			clientName:  "Alex Grim",
			clientEmail: "alexgrim@mail.com",
			status:      "pending",
			terms:       14,
			description: "Website Redesign",
			sender:      model.Address{Street: "19 Union Terrace", City: "London", PostCode: "E1 3EZ", Country: "United Kingdom"},
			client:      model.Address{Street: "84 Church Way", City: "Bradford", PostCode: "BD1 9PB", Country: "United Kingdom"},
			items: []seedItem{
				{name: "Website Redesign", quantity: 1, price: 14002.33},
			},
		},
		{
			clientName:  "John Morrison",
			clientEmail: "jm@myco.com",
			status:      "draft",
			terms:       7,
			description: "Landing Page Design",
			sender:      model.Address{Street: "19 Union Terrace", City: "London", PostCode: "E1 3EZ", Country: "United Kingdom"},
			client:      model.Address{Street: "79 Dover Road", City: "Westhall", PostCode: "IP19 3PF", Country: "United Kingdom"},
			items: []seedItem{
				{name: "Logo Sketches", quantity: 1, price: 102.04},
				{name: "Landing Page", quantity: 1, price: 1250.00},
			},
		},
	}

	for _, seed := range seeds {
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&seed.sender).Error; err != nil {
				return err
			}
			if err := tx.Create(&seed.client).Error; err != nil {
				return err
			}

			total := decimal.Zero
			items := make([]model.InvoiceItem, 0, len(seed.items))
			for _, it := range seed.items {
				price := decimal.NewFromFloat(it.price)
				lineTotal := price.Mul(decimal.NewFromInt(int64(it.quantity)))
				total = total.Add(lineTotal)
				items = append(items, model.InvoiceItem{
					Name:     it.name,
					Quantity: it.quantity,
					Price:    price,
					Total:    lineTotal,
				})
			}

			invoice := model.Invoice{
				PaymentDue:      datatypes.Date(time.Now().AddDate(0, 0, seed.terms)),
				Description:     seed.description,
				PaymentTerms:    seed.terms,
				ClientName:      seed.clientName,
				ClientEmail:     seed.clientEmail,
				Status:          seed.status,
				Total:           total,
				SenderAddressId: &seed.sender.Id,
				ClientAddressId: &seed.client.Id,
			}
			if err := tx.Create(&invoice).Error; err != nil {
				return err
			}

			for i := range items {
				items[i].InvoiceId = invoice.Id
			}
			return tx.Create(&items).Error
		})
		if err != nil {
			color.Red("Failed to seed invoice for '%s': %v", seed.clientName, err)
			os.Exit(1)
		}
		color.Green("Seeded invoice for '%s' (%s)", seed.clientName, seed.status)
	}

	color.Green("✅ Seed completed: %d invoices", len(seeds))
}
