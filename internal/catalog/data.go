package catalog

var categories = []Category{
	{ID: "all", Name: "Tous"},
	{ID: "massages", Name: "Massages"},
	{ID: "visage", Name: "Soins du Visage"},
	{ID: "hammam", Name: "Rituels Hammam"},
	{ID: "signature", Name: "Soins Signature"},
}

var services = []Service{
	{
		ID:          "massage-relaxant",
		Name:        "Massage Relaxant Or Rose",
		Category:    "massages",
		Description: "Un voyage sensoriel aux huiles précieuses pour une détente absolue du corps et de l'esprit.",
		Duration:    "60 min",
		BasePrice:   35000,
		Image:       "massage.jpg",
		Oils: OptionGroup{
			Kind:            GroupOil,
			DefaultOptionID: "lavande",
			Options: []Option{
				{ID: "lavande", Name: "Lavande Provence", PriceDelta: 0},
				{ID: "eucalyptus", Name: "Eucalyptus Premium", PriceDelta: 3000},
				{ID: "rose", Name: "Rose de Damas", PriceDelta: 5000},
			},
		},
		Music: OptionGroup{
			Kind:            GroupMusic,
			DefaultOptionID: "zen",
			Options: []Option{
				{ID: "zen", Name: "Zen & Nature", PriceDelta: 0},
				{ID: "piano", Name: "Piano Classique", PriceDelta: 0},
				{ID: "silence", Name: "Silence Absolu", PriceDelta: 0},
			},
		},
		Intensity: OptionGroup{
			Kind:            GroupIntensity,
			DefaultOptionID: "douce",
			Options: []Option{
				{ID: "douce", Name: "Douce", PriceDelta: 0},
				{ID: "moyenne", Name: "Moyenne", PriceDelta: 0},
				{ID: "intense", Name: "Intense", PriceDelta: 0},
			},
		},
	},
	{
		ID:          "massage-pierres",
		Name:        "Massage aux Pierres Chaudes",
		Category:    "massages",
		Description: "L'alliance parfaite de la chaleur des pierres volcaniques et des techniques ancestrales.",
		Duration:    "90 min",
		BasePrice:   55000,
		Image:       "massage.jpg",
		Oils: OptionGroup{
			Kind:            GroupOil,
			DefaultOptionID: "argan",
			Options: []Option{
				{ID: "argan", Name: "Argan Bio", PriceDelta: 0},
				{ID: "jasmin", Name: "Jasmin d'Orient", PriceDelta: 4000},
				{ID: "oud", Name: "Oud Royal", PriceDelta: 8000},
			},
		},
		Music: OptionGroup{
			Kind:            GroupMusic,
			DefaultOptionID: "zen",
			Options: []Option{
				{ID: "zen", Name: "Zen & Nature", PriceDelta: 0},
				{ID: "oriental", Name: "Oriental Dreams", PriceDelta: 0},
				{ID: "silence", Name: "Silence Absolu", PriceDelta: 0},
			},
		},
		Intensity: OptionGroup{
			Kind:            GroupIntensity,
			DefaultOptionID: "douce",
			Options: []Option{
				{ID: "douce", Name: "Douce", PriceDelta: 0},
				{ID: "moyenne", Name: "Moyenne", PriceDelta: 0},
				{ID: "intense", Name: "Intense", PriceDelta: 0},
			},
		},
	},
	{
		ID:          "facial-eclat",
		Name:        "Soin Visage Éclat Diamant",
		Category:    "visage",
		Description: "Révélez la luminosité naturelle de votre peau avec notre soin signature aux actifs précieux.",
		Duration:    "75 min",
		BasePrice:   45000,
		Image:       "facial.jpg",
		Oils: OptionGroup{
			Kind:            GroupOil,
			DefaultOptionID: "hyaluronique",
			Options: []Option{
				{ID: "hyaluronique", Name: "Acide Hyaluronique", PriceDelta: 0},
				{ID: "vitaminec", Name: "Vitamine C Pure", PriceDelta: 5000},
				{ID: "or", Name: "Masque à l'Or 24K", PriceDelta: 15000},
			},
		},
		Music: OptionGroup{
			Kind:            GroupMusic,
			DefaultOptionID: "spa",
			Options: []Option{
				{ID: "spa", Name: "Spa Melody", PriceDelta: 0},
				{ID: "nature", Name: "Sons de la Nature", PriceDelta: 0},
				{ID: "silence", Name: "Silence Absolu", PriceDelta: 0},
			},
		},
		Intensity: OptionGroup{
			Kind:            GroupIntensity,
			DefaultOptionID: "hydratant",
			Options: []Option{
				{ID: "hydratant", Name: "Hydratant", PriceDelta: 0},
				{ID: "antiage", Name: "Anti-Âge", PriceDelta: 5000},
				{ID: "detox", Name: "Détox Profond", PriceDelta: 3000},
			},
		},
	},
	{
		ID:          "hammam-royal",
		Name:        "Rituel Hammam Royal",
		Category:    "hammam",
		Description: "Une expérience complète inspirée des traditions orientales : gommage, enveloppement et massage.",
		Duration:    "120 min",
		BasePrice:   75000,
		Image:       "hammam.jpg",
		Oils: OptionGroup{
			Kind:            GroupOil,
			DefaultOptionID: "savonnoir",
			Options: []Option{
				{ID: "savonnoir", Name: "Savon Noir Traditionnel", PriceDelta: 0},
				{ID: "argan", Name: "Huile d'Argan Pure", PriceDelta: 5000},
				{ID: "ambre", Name: "Ambre & Musc", PriceDelta: 7000},
			},
		},
		Music: OptionGroup{
			Kind:            GroupMusic,
			DefaultOptionID: "oriental",
			Options: []Option{
				{ID: "oriental", Name: "Musique Orientale", PriceDelta: 0},
				{ID: "meditation", Name: "Méditation", PriceDelta: 0},
				{ID: "silence", Name: "Silence Absolu", PriceDelta: 0},
			},
		},
		Intensity: OptionGroup{
			Kind:            GroupIntensity,
			DefaultOptionID: "doux",
			Options: []Option{
				{ID: "doux", Name: "Gommage Doux", PriceDelta: 0},
				{ID: "moyen", Name: "Gommage Moyen", PriceDelta: 0},
				{ID: "intense", Name: "Gommage Intense", PriceDelta: 0},
			},
		},
	},
	{
		ID:          "signature-saphir",
		Name:        "L'Expérience SAPHIR",
		Category:    "signature",
		Description: "Notre rituel exclusif combinant les meilleurs soins dans une parenthèse de luxe ultime.",
		Duration:    "180 min",
		BasePrice:   150000,
		Image:       "signature.jpg",
		Oils: OptionGroup{
			Kind:            GroupOil,
			DefaultOptionID: "signature",
			Options: []Option{
				{ID: "signature", Name: "Mélange Signature SAPHIR", PriceDelta: 0},
				{ID: "diamant", Name: "Élixir aux Diamants", PriceDelta: 20000},
				{ID: "royal", Name: "Royal Collection", PriceDelta: 30000},
			},
		},
		Music: OptionGroup{
			Kind:            GroupMusic,
			DefaultOptionID: "live",
			Options: []Option{
				{ID: "live", Name: "Musique Live (Harpe)", PriceDelta: 25000},
				{ID: "personnalisee", Name: "Playlist Personnalisée", PriceDelta: 0},
				{ID: "silence", Name: "Silence Absolu", PriceDelta: 0},
			},
		},
		Intensity: OptionGroup{
			Kind:            GroupIntensity,
			DefaultOptionID: "equilibre",
			Options: []Option{
				{ID: "equilibre", Name: "Équilibré", PriceDelta: 0},
				{ID: "intense", Name: "Intense & Profond", PriceDelta: 0},
				{ID: "zen", Name: "Zen & Méditatif", PriceDelta: 0},
			},
		},
	},
}
