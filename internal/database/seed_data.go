// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

type seedText struct {
	Name        string
	Description string
}

type seedCategory struct {
	Slug         string
	Order        int
	Translations map[string]seedText
}

type seedProduct struct {
	SKU          string
	Category     string // category slug
	Price        string
	Material     string
	Weight       string
	Translations map[string]seedText
}

var seedCategories = []seedCategory{
	{Slug: "rings", Order: 10, Translations: map[string]seedText{
		"en": {"Rings", "Wedding, engagement, and decorative rings."},
		"de": {"Ringe", "Eheringe, Verlobungsringe und Zierringe."},
		"fr": {"Bagues", "Alliances, bagues de fiançailles et bagues décoratives."},
	}},
	{Slug: "earrings", Order: 20, Translations: map[string]seedText{
		"en": {"Earrings", "From elegant studs to luxurious chandeliers."},
		"de": {"Ohrringe", "Von eleganten Steckern bis hin zu luxuriösen Kronleuchtern."},
		"fr": {"Boucles d'oreilles", "Des clous élégants aux lustres luxueux."},
	}},
	{Slug: "necklaces", Order: 30, Translations: map[string]seedText{
		"en": {"Necklaces & Pendants", "Fine chains, pendants, and statement necklaces."},
		"de": {"Halsketten & Anhänger", "Feine Ketten, Anhänger und opulente Colliers."},
		"fr": {"Colliers & Pendentifs", "Chaînes fines, pendentifs et colliers imposants."},
	}},
	{Slug: "bracelets", Order: 40, Translations: map[string]seedText{
		"en": {"Bracelets", "Bangles, chain bracelets, and charm bracelets."},
		"de": {"Armbänder", "Armreifen, Gliederarmbänder und Bettelarmbänder."},
		"fr": {"Bracelets", "Bracelets joncs, chaînes et bracelets à breloques."},
	}},
	{Slug: "brooches", Order: 50, Translations: map[string]seedText{
		"en": {"Brooches", "Classic and modern designer brooches."},
		"de": {"Broschen", "Klassische und moderne Designer-Broschen."},
		"fr": {"Broches", "Broches de créateurs classiques et modernes."},
	}},
}

var seedProducts = []seedProduct{
	{SKU: "RG001", Category: "rings", Price: "1200.00", Material: "White Gold", Weight: "3.5", Translations: map[string]seedText{
		"en": {"Eternity Ring", "An elegant white gold ring with a diamond band."},
		"de": {"Ewigkeitsring", "Ein eleganter Weißgoldring mit Diamantband."},
		"fr": {"Bague Éternité", "Une élégante bague en or blanc avec une bande de diamants."},
	}},
	{SKU: "RG002", Category: "rings", Price: "850.50", Material: "Yellow Gold, Sapphire", Weight: "4.2", Translations: map[string]seedText{
		"en": {"Royal Blue Ring", "An engagement ring with a large sapphire surrounded by diamonds."},
		"de": {"Königsblauer Ring", "Ein Verlobungsring mit einem großen Saphir, umgeben von Diamanten."},
		"fr": {"Bague Bleu Royal", "Une bague de fiançailles avec un grand saphir entouré de diamants."},
	}},
	{SKU: "RG003", Category: "rings", Price: "450.00", Material: "Rose Gold", Weight: "2.8", Translations: map[string]seedText{
		"en": {"Minimalist Knot Ring", "A delicate rose gold ring in the shape of a knot."},
		"de": {"Minimalistischer Knotenring", "Ein zarter Roségoldring in Form eines Knotens."},
		"fr": {"Bague Nœud Minimaliste", "Une bague délicate en or rose en forme de nœud."},
	}},
	{SKU: "ER001", Category: "earrings", Price: "780.00", Material: "Platinum, Diamonds", Weight: "5.0", Translations: map[string]seedText{
		"en": {"Sparkle Stud Earrings", "Classic round diamond stud earrings."},
		"de": {"Funkelnde Ohrstecker", "Klassische runde Diamant-Ohrstecker."},
		"fr": {`Puces d'oreilles "Étincelle"`, "Puces d'oreilles classiques avec diamants ronds."},
	}},
	{SKU: "ER002", Category: "earrings", Price: "1500.00", Material: "Yellow Gold, Emeralds", Weight: "8.5", Translations: map[string]seedText{
		"en": {"Eden Chandelier Earrings", "Luxurious chandelier earrings with cascading emeralds."},
		"de": {"Eden Kronleuchter-Ohrringe", "Luxuriöse Kronleuchter-Ohrringe mit kaskadierenden Smaragden."},
		"fr": {`Boucles d'oreilles lustre "Éden"`, "Luxueuses boucles d'oreilles lustre avec des émeraudes en cascade."},
	}},
	{SKU: "ER003", Category: "earrings", Price: "320.00", Material: "Silver", Weight: "6.2", Translations: map[string]seedText{
		"en": {"Geometric Hoop Earrings", "Modern silver hoop earrings with a geometric pattern."},
		"de": {"Geometrische Kreolen", "Moderne silberne Kreolen mit geometrischem Muster."},
		"fr": {"Créoles Géométriques", "Créoles modernes en argent avec un motif géométrique."},
	}},
	{SKU: "NK001", Category: "necklaces", Price: "950.00", Material: "Rose Gold, Rose Quartz", Weight: "7.0", Translations: map[string]seedText{
		"en": {"Tenderness Necklace", "Necklace with a large rose quartz pendant."},
		"de": {`Halskette "Zärtlichkeit"`, "Halskette mit einem großen Rosenquarz-Anhänger."},
		"fr": {`Collier "Tendresse"`, "Collier avec un grand pendentif en quartz rose."},
	}},
	{SKU: "NK002", Category: "necklaces", Price: "550.00", Material: "Silver, Pearl", Weight: "12.0", Translations: map[string]seedText{
		"en": {"Classic Pearl Necklace", "A classic necklace made of natural freshwater pearls."},
		"de": {"Klassische Perlenkette", "Eine klassische Halskette aus natürlichen Süßwasserperlen."},
		"fr": {"Collier de Perles Classique", "Un collier classique en perles d'eau douce naturelles."},
	}},
	{SKU: "NK003", Category: "necklaces", Price: "250.00", Material: "Yellow Gold", Weight: "2.5", Translations: map[string]seedText{
		"en": {"Sunbeam Thin Chain", "A delicate yellow gold chain for everyday wear."},
		"de": {`Dünne Kette "Sonnenstrahl"`, "Eine zarte Gelbgoldkette für den Alltag."},
		"fr": {`Chaîne fine "Rayon de Soleil"`, "Une délicate chaîne en or jaune à porter au quotidien."},
	}},
	{SKU: "BR001", Category: "bracelets", Price: "680.00", Material: "Silver", Weight: "15.0", Translations: map[string]seedText{
		"en": {"Manhattan Bangle", "A wide, polished silver bangle bracelet."},
		"de": {"Manhattan Armreif", "Ein breiter, polierter Silber-Armreif."},
		"fr": {`Bracelet Manchette "Manhattan"`, "Un large bracelet manchette en argent poli."},
	}},
	{SKU: "BR002", Category: "bracelets", Price: "420.00", Material: "Yellow Gold", Weight: "9.5", Translations: map[string]seedText{
		"en": {"Venetian Chain Bracelet", "A classic Venetian weave chain bracelet."},
		"de": {"Venezianisches Gliederarmband", "Ein klassisches Armband mit venezianischem Geflecht."},
		"fr": {"Bracelet chaîne Vénitienne", "Un bracelet chaîne classique à maille vénitienne."},
	}},
	{SKU: "BR003", Category: "bracelets", Price: "890.00", Material: "Silver, Charms", Weight: "25.0", Translations: map[string]seedText{
		"en": {"Your Story Charm Bracelet", "A bracelet base to build your own charm collection."},
		"de": {"Dein-Märchen-Bettelarmband", "Eine Armbandbasis, um deine eigene Charm-Sammlung aufzubauen."},
		"fr": {`Bracelet à breloques "Ton Histoire"`, "Une base de bracelet pour créer votre propre collection de breloques."},
	}},
	{SKU: "BC001", Category: "brooches", Price: "1100.00", Material: "Platinum, Sapphires", Weight: "11.2", Translations: map[string]seedText{
		"en": {"Bird of Paradise Brooch", "An exquisite bird-shaped brooch adorned with sapphires."},
		"de": {"Paradiesvogel-Brosche", "Eine exquisite vogelförmige Brosche, verziert mit Saphiren."},
		"fr": {`Broche "Oiseau de Paradis"`, "Une broche exquise en forme d'oiseau, ornée de saphirs."},
	}},
	{SKU: "BC002", Category: "brooches", Price: "350.00", Material: "Yellow Gold, Enamel", Weight: "6.8", Translations: map[string]seedText{
		"en": {"Maple Leaf Brooch", "A maple leaf shaped brooch covered in colored enamel."},
		"de": {"Ahornblatt-Brosche", "Eine ahornblattförmige Brosche, überzogen mit farbigem Email."},
		"fr": {`Broche "Feuille d'érable"`, "Une broche en forme de feuille d'érable recouverte d'émail coloré."},
	}},
	{SKU: "BC003", Category: "brooches", Price: "580.00", Material: "Silver, Marcasite", Weight: "9.0", Translations: map[string]seedText{
		"en": {"Art Deco Brooch", "A geometric Art Deco style brooch with marcasite stones."},
		"de": {"Art-déco-Brosche", "Eine geometrische Brosche im Art-déco-Stil mit Markasitsteinen."},
		"fr": {"Broche Art Déco", "Une broche géométrique de style Art déco avec des marcassites."},
	}},
}
