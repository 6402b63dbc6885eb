// Seeds a small demo roster with payments, expenses and a match day so the
// reports have data to show on a fresh database.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Kasasatrevor256/ProFootball-Manager/models"
)

func mustDBFromEnv() *gorm.DB {
	_ = godotenv.Load()
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN not set in env")
	}
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	return gdb
}

func main() {
	dry := flag.Bool("dry-run", true, "dry-run: don't write to DB")
	flag.Parse()

	gdb := mustDBFromEnv()

	players := []models.Player{
		{Name: "Brian Okello", Phone: "0700111222", AnnualDue: models.DefaultAnnualDue, MonthlyDue: models.DefaultMonthlyDue, PitchDue: models.DefaultPitchDue},
		{Name: "Grace Auma", Phone: "0700333444", AnnualDue: models.DefaultAnnualDue, MonthlyDue: models.DefaultMonthlyDue, PitchDue: models.DefaultPitchDue},
		{Name: "Samuel Odoi", Phone: "0700555666", AnnualDue: models.DefaultAnnualDue, MonthlyDue: models.DefaultMonthlyDue, PitchDue: models.DefaultPitchDue},
	}

	if *dry {
		fmt.Printf("dry-run: would create %d players plus payments, expenses and one match day\n", len(players))
		fmt.Println("re-run with --dry-run=false to write")
		return
	}

	var count int64
	gdb.Model(&models.Player{}).Count(&count)
	if count > 0 {
		log.Fatalf("refusing to seed: players table already has %d rows", count)
	}

	for i := range players {
		if err := gdb.Create(&players[i]).Error; err != nil {
			log.Fatalf("create player %s: %v", players[i].Name, err)
		}
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	matchDate := today.AddDate(0, 0, -7)

	payments := []models.Payment{
		{PlayerID: players[0].ID, PlayerName: players[0].Name, PaymentType: models.PaymentAnnual, Amount: models.DefaultAnnualDue, Date: today.AddDate(0, -1, 0), CreatedBy: "seed"},
		{PlayerID: players[1].ID, PlayerName: players[1].Name, PaymentType: models.PaymentMonthly, Amount: models.DefaultMonthlyDue, Date: today, CreatedBy: "seed"},
		{PlayerID: players[1].ID, PlayerName: players[1].Name, PaymentType: models.PaymentPitch, Amount: models.DefaultPitchDue, Date: today, CreatedBy: "seed"},
		{PlayerID: players[2].ID, PlayerName: players[2].Name, PaymentType: models.PaymentMatchDay, Amount: 5000, Date: matchDate, CreatedBy: "seed"},
	}
	for i := range payments {
		if err := gdb.Create(&payments[i]).Error; err != nil {
			log.Fatalf("create payment: %v", err)
		}
	}

	matchDay := models.MatchDay{MatchDate: matchDate, Opponent: "Demo United", Venue: "Home", MatchType: "friendly"}
	if err := gdb.Create(&matchDay).Error; err != nil {
		log.Fatalf("create match day: %v", err)
	}

	expenses := []models.Expense{
		{Description: "Match officials", Category: "Referee", Amount: 8000, ExpenseDate: matchDate, MatchDayID: &matchDay.ID, CreatedBy: "seed"},
		{Description: "Drinking water", Category: "Water", Amount: 4000, ExpenseDate: matchDate, MatchDayID: &matchDay.ID, CreatedBy: "seed"},
		{Description: "Training balls", Category: "Equipment", Amount: 25000, ExpenseDate: today, CreatedBy: "seed"},
	}
	for i := range expenses {
		if err := gdb.Create(&expenses[i]).Error; err != nil {
			log.Fatalf("create expense: %v", err)
		}
	}

	fmt.Printf("seeded %d players, %d payments, %d expenses, 1 match day\n", len(players), len(payments), len(expenses))
}
