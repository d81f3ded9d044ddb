package database

import (
	"log"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"mycolog/entities"
)

var seedGrowers = []struct {
	Username          string
	SubstrateType     string
	SubstrateMoisture float64
	MinHarvestKg      float64
	MaxHarvestKg      float64
}{
	{"Dhanush", "Straw", 65.0, 1.0, 3.0},
	{"Rakesh", "Sawdust", 70.0, 2.0, 4.0},
	{"Gagan", "Compost", 68.0, 1.5, 5.0},
}

// Seed loads a deterministic demo dataset: one batch per grower, daily
// observations from 2025-11-04 through 2025-12-10 with plausible South-India
// climate, and flushes from day 23 on a fixed cadence. It is a no-op when
// the seed growers already exist, unless reset is set.
func Seed(db *gorm.DB, reset bool) error {
	var count int64
	if err := db.Model(&entities.User{}).Where("username IN ?", []string{"Dhanush", "Rakesh", "Gagan"}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 && !reset {
		return nil
	}
	if count > 0 {
		log.Printf("[seed] clearing existing data")
		for _, m := range []any{&entities.Harvest{}, &entities.Observation{}, &entities.Batch{}, &entities.User{}} {
			if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
				return err
			}
		}
	}

	// fixed seed keeps the dataset identical across runs
	rng := rand.New(rand.NewSource(42))

	start := time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC)
	totalDays := int(end.Sub(start).Hours()/24) + 1
	const harvestStartDay = 23
	harvestDays := map[int]bool{0: true, 4: true, 9: true, 14: true, 19: true, 24: true, 29: true}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, g := range seedGrowers {
			u := entities.User{Username: g.Username}
			if err := tx.Create(&u).Error; err != nil {
				return err
			}
			b := entities.Batch{
				UserID:                   u.UserID,
				SubstrateType:            g.SubstrateType,
				SubstrateMoisturePercent: g.SubstrateMoisture,
				SpawnRatePercent:         5.0,
				StartDate:                start,
			}
			if err := tx.Create(&b).Error; err != nil {
				return err
			}

			totalYield := 0.0
			flush := 1
			for day := 0; day < totalDays; day++ {
				date := start.AddDate(0, 0, day)
				temp, humidity := seedWeather(rng, day)
				obs := entities.Observation{
					BatchID:                   b.BatchID,
					Date:                      date,
					AmbientTemperatureCelsius: temp,
					RelativeHumidityPercent:   humidity,
					CO2Level:                  seedCO2(temp, humidity),
					LightHoursPerDay:          round1(10.0 + rng.Float64()*4.0),
				}
				if err := tx.Create(&obs).Error; err != nil {
					return err
				}

				if day >= harvestStartDay && harvestDays[day-harvestStartDay] {
					factor := 1.0
					if temp >= 24 && temp <= 27 && humidity >= 75 && humidity <= 85 {
						factor = 1.15
					} else if temp > 28 || humidity < 70 {
						factor = 0.85
					}
					yield := round2(clamp((g.MinHarvestKg+rng.Float64()*(g.MaxHarvestKg-g.MinHarvestKg))*factor, 0.5, g.MaxHarvestKg*1.2))
					totalYield += yield
					hv := entities.Harvest{
						BatchID:           b.BatchID,
						FlushNumber:       flush,
						FlushYieldKg:      yield,
						TotalBatchYieldKg: round2(totalYield),
						Date:              date,
					}
					if err := tx.Create(&hv).Error; err != nil {
						return err
					}
					flush++
				}
			}
			log.Printf("[seed] %s: batch %d, %d observations, %d harvests, %.2f kg total",
				g.Username, b.BatchID, totalDays, flush-1, totalYield)
		}
		return nil
	})
}

// seedWeather mimics the Nov-Dec South-India range: 22-30°C, 60-90% RH,
// drifting cooler and damper toward December.
func seedWeather(rng *rand.Rand, day int) (temp, humidity float64) {
	temp = 26.0 + (rng.Float64()*7 - 3)
	humidity = 75.0 + (rng.Float64()*30 - 15)
	if day > 20 {
		temp -= 1.5
		humidity += 5
	}
	return round1(clamp(temp, 22, 30)), round1(clamp(humidity, 60, 90))
}

func seedCO2(temp, humidity float64) string {
	switch {
	case temp > 28 && humidity > 85:
		return "high"
	case temp < 24 || humidity < 70:
		return "low"
	default:
		return "medium"
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 { return float64(int(v*10+0.5)) / 10 }
func round2(v float64) float64 { return float64(int(v*100+0.5)) / 100 }
