// Seeds a handful of submitted responses so the dashboard has something to
// show during demos.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"milletsurvey/internal/model"
)

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	coll := client.Database("milletsurvey").Collection("survey_responses")

	samples := []model.AnswerMap{
		{
			"ward_location": "Ward 12 - Mberengwa",
			"A1_gender":     "female",
			"A2_age":        "46",
			"A3_education":  "primary",
			"A5_marital":    "married",
			"A6_hsize":      "7",
			"A8_land_access": []string{"communal"},
			"A9_land_size":  "3",
			"A11_cattle":    4,
			"A11_goats":     9,
			"A12_group":     "yes",
			"B1_1_method":   "conventional",
			"B1_2_why":      "It is the method my family has always used and we own a plough.",
			"B2_1_fertility": "2",
			"B2_2_methods":  []string{"cattle_manure", "rotation"},
			"B2_5_inm_heard": "no",
			"B3_1_seed_type": "local",
			"B3_2_why":      []string{"drought", "taste"},
			"C1_barrier":    "5",
			"C2_access":     "4",
			"C3_knowledge":  "3",
			"C4_willing":    "5",
			"C5_climate":    "4",
			"D1_contact":    "yes",
			"D3_relevance":  "3",
			"E1_challenge":  "The rains are unreliable and we cannot afford fertilizer for the whole field.",
			"E2_encourage":  "Training and affordable inputs from the cooperative.",
		},
		{
			"ward_location": "Ward 7 - Zvishavane",
			"A1_gender":     "male",
			"A2_age":        "58",
			"A3_education":  "secondary",
			"A5_marital":    "married",
			"A6_hsize":      "5",
			"A8_land_access": []string{"own", "rented"},
			"A9_land_size":  "6",
			"A11_cattle":    11,
			"A11_goats":     0,
			"A12_group":     "no",
			"B1_1_method":   "conservation",
			"B2_1_fertility": "3",
			"B2_2_methods":  []string{"inorganic", "cattle_manure"},
			"B2_5_inm_heard": "yes",
			"B2_6_inm_benefits": []string{"yield", "cost"},
			"B3_1_seed_type": "improved",
			"B3_2_why":      []string{"yield", "market"},
			"C1_barrier":    "4",
			"C2_access":     "3",
			"C3_knowledge":  "4",
			"C4_willing":    "4",
			"C5_climate":    "5",
			"D1_contact":    "no",
			"E1_challenge":  "Seed availability and the market price for the harvest.",
		},
		{
			"ward_location": "Ward 12 - Mberengwa",
			"A1_gender":     "female",
			"A2_age":        "39",
			"A3_education":  "none",
			"A9_land_size":  "1.5",
			"A11_cattle":    0,
			"A11_goats":     3,
			"B1_1_method":   "zero",
			"B2_5_inm_heard": "no",
			"C1_barrier":    "5",
			"C4_willing":    "5",
			"D1_contact":    "no",
			"E1_challenge":  "Drought and lack of water for the crops.",
		},
	}

	base := time.Now().UTC()
	for i, answers := range samples {
		response := &model.SurveyResponse{
			ID:         "SR-" + uuid.New().String()[:8],
			Date:       base.Add(-time.Duration(i) * 24 * time.Hour),
			Ward:       answers.String("ward_location"),
			Enumerator: "MSU Research Team",
			FarmerID:   fmt.Sprintf("F-%04d", 1000+i),
			Answers:    answers.Sanitize(),
			Status:     model.ResponseSubmitted,
		}
		if _, err := coll.InsertOne(ctx, response); err != nil {
			log.Fatalf("Failed to insert sample response: %v", err)
		}
		fmt.Printf("inserted %s (%s)\n", response.ID, response.Ward)
	}

	fmt.Printf("seeded %d responses\n", len(samples))
}
