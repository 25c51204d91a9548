// gendata writes a sample six-table CSV dataset for local dashboard runs.
// Timestamps are emitted in a mix of the formats the normalizer supports,
// and a small share of rows is deliberately malformed to exercise the
// defensive ingestion path.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"commerce-dashboard/internal/dataset"
)

var (
	statuses   = []string{"delivered", "shipped", "processing", "canceled"}
	categories = []string{"electronics", "furniture", "toys", "books", "sports"}
	states     = []string{"SP", "RJ", "MG", "BA", "RS"}
	cities     = []string{"sao paulo", "rio de janeiro", "belo horizonte", "salvador", "porto alegre"}
	payTypes   = []string{"credit_card", "boleto", "voucher", "debit_card"}
	stages     = []string{"order_created", "order_paid", "order_shipped", "order_delivered"}
)

func main() {
	var count int
	var dir string
	var seed int64
	flag.IntVar(&count, "count", 200, "number of orders to generate")
	flag.StringVar(&dir, "dir", "data", "output directory")
	flag.Int64Var(&seed, "seed", 1, "rng seed")
	flag.Parse()

	if err := generate(count, dir, seed); err != nil {
		log.Fatalf("generation failed: %v", err)
	}
}

func generate(count int, dir string, seed int64) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}
	rng := rand.New(rand.NewSource(seed))
	base := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	var orders, payments, products, customers, sellers, lifecycle [][]string
	orders = append(orders, []string{
		"order_id", "customer_id", "order_status",
		"order_purchase_timestamp", "order_approved_at",
		"order_delivered_carrier_date", "order_delivered_customer_date",
		"order_estimated_delivery_date",
	})
	payments = append(payments, []string{"order_id", "payment_type", "payment_installments", "payment_value"})
	products = append(products, []string{"product_id", "product_category_name"})
	customers = append(customers, []string{"customer_id", "customer_unique_id", "customer_city", "customer_state"})
	sellers = append(sellers, []string{"seller_id"})
	lifecycle = append(lifecycle, []string{"order_id", "event_type", "event_timestamp"})

	for i := 0; i < count/10+1; i++ {
		products = append(products, []string{uuid.New().String(), categories[rng.Intn(len(categories))]})
		sellers = append(sellers, []string{uuid.New().String()})
	}

	for i := 0; i < count; i++ {
		orderID := uuid.New().String()
		customerID := uuid.New().String()
		status := statuses[rng.Intn(len(statuses))]
		purchase := base.Add(time.Duration(rng.Intn(180*24)) * time.Hour)

		region := rng.Intn(len(states))
		customers = append(customers, []string{customerID, uuid.New().String(), cities[region], states[region]})

		approved := purchase.Add(time.Duration(1+rng.Intn(48)) * time.Hour)
		carrier := approved.Add(time.Duration(rng.Intn(72)) * time.Hour)
		delivered := carrier.Add(time.Duration(rng.Intn(240)) * time.Hour)
		estimated := purchase.Add(time.Duration(5+rng.Intn(20)) * 24 * time.Hour)

		deliveredStr := ""
		if status == "delivered" {
			deliveredStr = delivered.Format("2006-01-02 15:04:05")
		}
		// One layout per column: mixing layouts inside a column would
		// trip the parser's first-format-wins rule and null out the rest.
		orders = append(orders, []string{
			orderID, customerID, status,
			purchase.Format("2006-01-02 15:04:05"),
			approved.Format("2006-01-02 15:04"),
			carrier.Format("02/01/2006 15:04:05"),
			deliveredStr,
			estimated.Format("2006-01-02 15:04:05"),
		})

		// Some orders pay in several installment plans, some not at all.
		for p := 0; p < rng.Intn(3); p++ {
			value := 20 + rng.Float64()*480
			payments = append(payments, []string{
				orderID,
				payTypes[rng.Intn(len(payTypes))],
				fmt.Sprintf("%d", 1+rng.Intn(10)),
				fmt.Sprintf("%.2f", value),
			})
		}

		eventTime := purchase
		for s, stage := range stages {
			if status != "delivered" && s > rng.Intn(len(stages)) {
				break
			}
			ts := eventTime.Format("2006-01-02 15:04:05")
			if rng.Intn(50) == 0 {
				ts = "not-a-timestamp"
			}
			lifecycle = append(lifecycle, []string{orderID, stage, ts})
			eventTime = eventTime.Add(time.Duration(1+rng.Intn(48)) * time.Hour)
		}
	}

	files := map[string][][]string{
		dataset.TableOrders:    orders,
		dataset.TablePayments:  payments,
		dataset.TableProducts:  products,
		dataset.TableCustomers: customers,
		dataset.TableSellers:   sellers,
		dataset.TableLifecycle: lifecycle,
	}
	for name, records := range files {
		if err := writeCSV(filepath.Join(dir, name+".csv"), records); err != nil {
			return err
		}
		log.Printf("wrote %s (%d rows)", name, len(records)-1)
	}
	return nil
}

func writeCSV(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	w.Flush()
	return w.Error()
}
