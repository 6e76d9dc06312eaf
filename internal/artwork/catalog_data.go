package artwork

import "art-historian/internal/model"

var defaultArtworks = []Artwork{
	{
		ID:       1,
		Title:    "Mona Lisa",
		Artist:   "Leonardo da Vinci",
		Period:   "High Renaissance",
		Year:     "1503–1519",
		Style:    "Portrait",
		ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/e/ec/Mona_Lisa%2C_by_Leonardo_da_Vinci%2C_from_C2RMF_retouched.jpg/1200px-Mona_Lisa%2C_by_Leonardo_da_Vinci%2C_from_C2RMF_retouched.jpg",
		Description: "The Mona Lisa is a half-length portrait painting by Italian artist Leonardo da Vinci. " +
			"Considered an archetypal masterpiece of the Italian Renaissance, it has been described as " +
			"'the best known, the most visited, the most written about, the most sung about, the most parodied work of art in the world'.",
		Descriptions: map[model.Language]string{
			model.LanguageEnglish: "The Mona Lisa is a half-length portrait painting by Italian artist Leonardo da Vinci. " +
				"Considered an archetypal masterpiece of the Italian Renaissance, it has been described as " +
				"'the best known, the most visited, the most written about, the most sung about, the most parodied work of art in the world'.",
			model.LanguageSpanish: "La Mona Lisa es un retrato de medio cuerpo pintado por el artista italiano Leonardo da Vinci. " +
				"Considerada una obra maestra arquetípica del Renacimiento italiano, se la ha descrito como " +
				"'la obra de arte más conocida, más visitada, sobre la que más se ha escrito y la más parodiada del mundo'.",
			model.LanguageFrench: "La Joconde est un portrait à mi-corps peint par l'artiste italien Léonard de Vinci. " +
				"Considérée comme un chef-d'œuvre archétypal de la Renaissance italienne, elle a été décrite comme " +
				"'l'œuvre d'art la plus connue, la plus visitée, la plus commentée et la plus parodiée au monde'.",
			model.LanguageHindi: "मोना लिसा इतालवी कलाकार लियोनार्डो दा विंची द्वारा बनाया गया अर्ध-लंबाई का चित्र है। " +
				"इसे इतालवी पुनर्जागरण की एक आदर्श उत्कृष्ट कृति माना जाता है और इसे विश्व की सबसे प्रसिद्ध कलाकृति कहा गया है।",
		},
	},
	{
		ID:       2,
		Title:    "The Starry Night",
		Artist:   "Vincent van Gogh",
		Period:   "Post-Impressionism",
		Year:     "1889",
		Style:    "Landscape",
		ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/9/94/The_Starry_Night.jpg/1280px-The_Starry_Night.jpg",
		Description: "The Starry Night is an oil-on-canvas painting by Dutch Post-Impressionist painter Vincent van Gogh. " +
			"Painted in June 1889, it depicts the view from the east-facing window of his asylum room at Saint-Rémy-de-Provence, " +
			"just before sunrise, with the addition of an imaginary village.",
		Descriptions: map[model.Language]string{
			model.LanguageSpanish: "La noche estrellada es un óleo sobre lienzo del pintor postimpresionista neerlandés Vincent van Gogh. " +
				"Pintado en junio de 1889, muestra la vista desde la ventana orientada al este de su habitación en el asilo de " +
				"Saint-Rémy-de-Provence, justo antes del amanecer, con un pueblo imaginario añadido.",
			model.LanguageFrench: "La Nuit étoilée est une huile sur toile du peintre postimpressionniste néerlandais Vincent van Gogh. " +
				"Peinte en juin 1889, elle représente la vue depuis la fenêtre orientée à l'est de sa chambre à l'asile de " +
				"Saint-Rémy-de-Provence, juste avant le lever du soleil, avec un village imaginaire.",
		},
	},
	{
		ID:       3,
		Title:    "The Great Wave off Kanagawa",
		Artist:   "Hokusai",
		Period:   "Ukiyo-e",
		Year:     "1829–1833",
		Style:    "Woodblock print",
		ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/a/a5/Tsunami_by_hokusai_19th_century.jpg/1280px-Tsunami_by_hokusai_19th_century.jpg",
		Description: "The Great Wave off Kanagawa is a woodblock print by Japanese ukiyo-e artist Hokusai, " +
			"published in 1831 in the late Edo period as the first print in Hokusai's series Thirty-six Views of Mount Fuji.",
	},
	{
		ID:       4,
		Title:    "The Persistence of Memory",
		Artist:   "Salvador Dalí",
		Period:   "Surrealism",
		Year:     "1931",
		Style:    "Surrealist painting",
		ImageURL: "https://upload.wikimedia.org/wikipedia/en/thumb/d/dd/The_Persistence_of_Memory.jpg/1200px-The_Persistence_of_Memory.jpg",
		Description: "The Persistence of Memory is a 1931 painting by artist Salvador Dalí, and is one of his most recognizable works. " +
			"The well-known surrealist piece introduces the image of the soft melting pocket watch.",
	},
}
