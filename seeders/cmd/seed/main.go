package main

import (
	"flag"
	"log"

	"research-admin/pkg/config"
	"research-admin/pkg/database/postgresql"
	"research-admin/seeders"
)

func main() {
	runDicts := flag.Bool("dictionaries", false, "seed the equipment catalog and sample labs")
	runAdmin := flag.Bool("admin", false, "seed the initial admin account")
	runAll := flag.Bool("all", false, "run every seeder")
	flag.Parse()

	if !*runDicts && !*runAdmin && !*runAll {
		log.Println("no seeder selected")
		flag.PrintDefaults()
		return
	}

	cfg := config.New()
	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	if *runAll || *runDicts {
		seeders.SeedDictionaries(dbPool)
	}
	if *runAll || *runAdmin {
		seeders.SeedAdmin(dbPool)
	}

	log.Println("seeding complete")
}
