package catalog

import "milletsurvey/internal/model"

func label(text string) map[model.Language]string {
	return map[model.Language]string{model.LanguageEnglish: text}
}

func option(value, text string) model.Option {
	return model.Option{Value: value, Label: label(text)}
}

var yesNo = []model.Option{
	option("yes", "1. Yes"),
	option("no", "2. No"),
}

// Default returns the finger millet production questionnaire used by the
// field study.
func Default() *Catalog {
	return MustNew([]model.Question{
		{
			ID:      "intro_script",
			Section: model.SectionIntro,
			Label:   label("My name is Nency Munyuki, and I am a researcher from Midlands State University. We are conducting a study to understand the farming practices, challenges, and opportunities smallholder farmers face in finger millet production. Your experience is very valuable to us. This interview will take about 30-45 minutes. Your participation is voluntary, and you can choose not to answer any question or stop the interview at any time. All your answers will be kept strictly confidential and will be used only for this research. Thank you for your time."),
			Type:    model.QuestionTypeInfo,
		},
		{
			ID:      "ward_location",
			Section: model.SectionIntro,
			Label:   label("What is your Location (Ward)?"),
			Type:    model.QuestionTypeText,
		},

		// Part A: farmer profile
		{
			ID:      "A1_gender",
			Section: model.SectionProfile,
			Label:   label("A1: What is the Gender of the Respondent?"),
			Type:    model.QuestionTypeGender,
		},
		{
			ID:      "A2_age",
			Section: model.SectionProfile,
			Label:   label("A2: What is the Age of the Respondent? (Years)"),
			Type:    model.QuestionTypeNumber,
		},
		{
			ID:      "A3_education",
			Section: model.SectionProfile,
			Label:   label("A3: What is the highest level of formal education you have completed?"),
			Type:    model.QuestionTypeRadio,
			Options: []model.Option{
				option("none", "1. No formal schooling"),
				option("primary", "2. Primary"),
				option("secondary", "3. Secondary"),
				option("tertiary", "4. Tertiary/College"),
			},
		},
		{
			ID:      "A5_marital",
			Section: model.SectionProfile,
			Label:   label("A5: What is your Marital Status?"),
			Type:    model.QuestionTypeRadio,
			Options: []model.Option{
				option("single", "1. Single"),
				option("married", "2. Married"),
				option("widowed", "3. Widowed"),
				option("divorced", "4. Divorced/Separated"),
			},
		},
		{
			ID:      "A6_hsize",
			Section: model.SectionProfile,
			Label:   label("A6: What is the Household Size? (Number of people living and eating together)"),
			Type:    model.QuestionTypeNumber,
		},
		{
			ID:      "A7_income",
			Section: model.SectionProfile,
			Label:   label("A7: What is your primary source of income?"),
			Type:    model.QuestionTypeText,
		},
		{
			ID:      "A8_land_access",
			Section: model.SectionProfile,
			Label:   label("A8: How do you access the land you farm on? (Tick all that apply)"),
			Type:    model.QuestionTypeCheckbox,
			Options: []model.Option{
				option("own", "1. Own land (with title deed)"),
				option("communal", "2. Communal land (allocated by traditional leader)"),
				option("rented", "3. Rented/Leased land"),
				option("borrowed", "4. Borrowed land (no payment)"),
			},
		},
		{
			ID:      "A9_land_size",
			Section: model.SectionProfile,
			Label:   label("A9: What is the total size of your landholding? (Acres/Hectares)"),
			Type:    model.QuestionTypeNumber,
		},
		{
			ID:      "A10_crops",
			Section: model.SectionProfile,
			Label:   label("A10: Which crops are you producing?"),
			Type:    model.QuestionTypeText,
		},
		{
			ID:      "A11_cattle",
			Section: model.SectionProfile,
			Label:   label("A11: Cattle (Number owned)"),
			Type:    model.QuestionTypeCounter,
		},
		{
			ID:      "A11_goats",
			Section: model.SectionProfile,
			Label:   label("A11: Goats (Number owned)"),
			Type:    model.QuestionTypeCounter,
		},
		{
			ID:      "A12_group",
			Section: model.SectionProfile,
			Label:   label("A12: Are you a member of any farmer group or cooperative?"),
			Type:    model.QuestionTypeRadio,
			Options: yesNo,
		},

		// Part B1: tillage
		{
			ID:      "B1_1_method",
			Section: model.SectionTillage,
			Label:   label("B1.1: What is your primary method of land preparation for finger millet?"),
			Type:    model.QuestionTypeRadio,
			Options: []model.Option{
				option("conventional", "1. Conventional Tillage (mouldboard plough, disc plough)"),
				option("conservation", "2. Conservation Tillage (e.g., ripping, planting basins)"),
				option("zero", "3. Zero Tillage (direct seeding without tillage)"),
				option("other", "4. Other"),
			},
		},
		{
			ID:      "B1_2_why",
			Section: model.SectionTillage,
			Label:   label("B1.2: Why do you use this method?"),
			Type:    model.QuestionTypeText,
		},
		{
			ID:      "B1_3_change",
			Section: model.SectionTillage,
			Label:   label("B1.3: What would make you consider changing your tillage method?"),
			Type:    model.QuestionTypeText,
		},

		// Part B2: nutrients
		{
			ID:      "B2_1_fertility",
			Section: model.SectionNutrients,
			Label:   label("B2.1: How would you describe the current fertility of your finger millet fields?"),
			Type:    model.QuestionTypeRadio,
			Options: []model.Option{
				option("1", "1. Very poor"),
				option("2", "2. Poor"),
				option("3", "3. Moderate"),
				option("4", "4. Good"),
				option("5", "5. Very good"),
			},
		},
		{
			ID:      "B2_2_methods",
			Section: model.SectionNutrients,
			Label:   label("B2.2: What method(s) do you currently use to improve soil fertility? (Tick all that apply)"),
			Type:    model.QuestionTypeCheckbox,
			Options: []model.Option{
				option("inorganic", "1. Inorganic fertilizer (e.g., Compound D, AN)"),
				option("cattle_manure", "2. Cattle manure"),
				option("goat_manure", "3. Goat manure"),
				option("compost", "4. Compost"),
				option("rotation", "5. Crop rotation"),
				option("legume", "6. Legume intercropping"),
				option("fallowing", "7. Fallowing"),
				option("none", "8. None"),
			},
		},
		{
			ID:      "B2_5_inm_heard",
			Section: model.SectionNutrients,
			Label:   label("B2.5: Have you ever heard of combining organic manure with a small amount of inorganic fertilizer? (INM)"),
			Type:    model.QuestionTypeRadio,
			Options: yesNo,
		},
		{
			ID:        "B2_6_inm_benefits",
			Section:   model.SectionNutrients,
			Label:     label("B2.6: If Yes, what are the potential benefits of using INM? (Tick all that apply)"),
			Type:      model.QuestionTypeCheckbox,
			Condition: &model.Condition{DependsOn: "B2_5_inm_heard", Equals: "yes"},
			Options: []model.Option{
				option("yield", "1. Better crop yields"),
				option("health", "2. Improves soil health for longer"),
				option("cost", "3. Reduces cost of buying fertilizer"),
				option("resilient", "4. More drought-resilient crops"),
				option("unknown", "5. I don't know the benefits"),
			},
		},

		// Part B3: seeds
		{
			ID:      "B3_1_seed_type",
			Section: model.SectionSeeds,
			Label:   label("B3.1: What type of finger millet seed did you plant in the most recent season?"),
			Type:    model.QuestionTypeRadio,
			Options: []model.Option{
				option("local", "1. Local/Traditional Variety"),
				option("improved", "2. Improved/Certified Variety"),
			},
		},
		{
			ID:      "B3_2_why",
			Section: model.SectionSeeds,
			Label:   label("B3.2: Why did you choose this particular variety? (Tick all that apply)"),
			Type:    model.QuestionTypeCheckbox,
			Options: []model.Option{
				option("drought", "1. Drought tolerance"),
				option("yield", "2. High yield"),
				option("taste", "3. Better taste"),
				option("market", "4. Marketability"),
				option("avail", "5. Availability"),
				option("pest", "6. Pest/disease resistance"),
			},
		},

		// Part C: perceptions (1-5 likert)
		{
			ID:      "C1_barrier",
			Section: model.SectionPerceptions,
			Label:   label("C1: The high cost of inorganic fertilizer is a major barrier to my farming."),
			Type:    model.QuestionTypeLikert,
		},
		{
			ID:      "C2_access",
			Section: model.SectionPerceptions,
			Label:   label("C2: I have sufficient access to quality organic manure (cattle, goat, compost) on my farm."),
			Type:    model.QuestionTypeLikert,
		},
		{
			ID:      "C3_knowledge",
			Section: model.SectionPerceptions,
			Label:   label("C3: I have the necessary knowledge and skills to prepare and apply compost/manure effectively."),
			Type:    model.QuestionTypeLikert,
		},
		{
			ID:      "C4_willing",
			Section: model.SectionPerceptions,
			Label:   label("C4: I am willing to try new farming methods if they are proven to increase yield and profit."),
			Type:    model.QuestionTypeLikert,
		},
		{
			ID:      "C5_climate",
			Section: model.SectionPerceptions,
			Label:   label("C5: The changing climate (unreliable rains, droughts) makes it risky to invest in new practices."),
			Type:    model.QuestionTypeLikert,
		},

		// Part D: institutional support
		{
			ID:      "D1_contact",
			Section: model.SectionSupport,
			Label:   label("D1: In the last 2 years, have you had any contact with an agricultural extension officer (AGRITEX)?"),
			Type:    model.QuestionTypeRadio,
			Options: yesNo,
		},
		{
			ID:        "D3_relevance",
			Section:   model.SectionSupport,
			Label:     label("D3: How relevant and practical was the training/advice you received?"),
			Type:      model.QuestionTypeRadio,
			Condition: &model.Condition{DependsOn: "D1_contact", Equals: "yes"},
			Options: []model.Option{
				option("1", "1. Not relevant"),
				option("2", "2. Slightly relevant"),
				option("3", "3. Moderately relevant"),
				option("4", "4. Very relevant"),
			},
		},

		// Part E: conclusion
		{
			ID:      "E1_challenge",
			Section: model.SectionConclusion,
			Label:   label("E1: In your own words, what is the SINGLE biggest challenge you face in growing finger millet?"),
			Type:    model.QuestionTypeText,
		},
		{
			ID:      "E2_encourage",
			Section: model.SectionConclusion,
			Label:   label("E2: What would encourage you to start or increase the use of improved practices (like new tillage, INM, or new varieties)?"),
			Type:    model.QuestionTypeText,
		},
		{
			ID:      "E3_other",
			Section: model.SectionConclusion,
			Label:   label("E3: Do you have any other comments or suggestions?"),
			Type:    model.QuestionTypeText,
		},
	})
}
