package institution

// Seed returns the built-in map: 25 French public institutions with their
// coordinates and starting dependency scores.
func Seed() Catalog {
	return Catalog{
		{ID: 1, Name: "Mairie de Paris", Lat: 48.8566, Lng: 2.3522, Dependency: 80},
		{ID: 2, Name: "Université de Lille", Lat: 50.6333, Lng: 3.0667, Dependency: 70},
		{ID: 3, Name: "Lycée Thiers, Marseille", Lat: 43.2965, Lng: 5.378, Dependency: 90},
		{ID: 4, Name: "IUT de Bordeaux", Lat: 44.8378, Lng: -0.5792, Dependency: 60},
		{ID: 5, Name: "École Maternelle, Rennes", Lat: 48.1173, Lng: -1.6778, Dependency: 50},
		{ID: 6, Name: "IUT de Nevers", Lat: 46.996, Lng: 3.170, Dependency: 75},
		{ID: 7, Name: "Université de Strasbourg", Lat: 48.5839, Lng: 7.7478, Dependency: 65},
		{ID: 8, Name: "Mairie de Lyon", Lat: 45.7640, Lng: 4.8357, Dependency: 85},
		{ID: 9, Name: "Collège Jean Moulin, Toulouse", Lat: 43.6047, Lng: 1.4442, Dependency: 78},
		{ID: 10, Name: "Université de Nantes", Lat: 47.2184, Lng: -1.5536, Dependency: 68},
		{ID: 11, Name: "Mairie de Nice", Lat: 43.7000, Lng: 7.2667, Dependency: 88},
		{ID: 12, Name: "Lycée Joffre, Montpellier", Lat: 43.6108, Lng: 3.8767, Dependency: 82},
		{ID: 13, Name: "IUT de Grenoble", Lat: 45.1943, Lng: 5.7245, Dependency: 55},
		{ID: 14, Name: "Mairie de Reims", Lat: 49.2583, Lng: 4.0317, Dependency: 79},
		{ID: 15, Name: "Université de Caen", Lat: 49.1829, Lng: -0.3707, Dependency: 62},
		{ID: 16, Name: "École primaire, Amiens", Lat: 49.8941, Lng: 2.2958, Dependency: 45},
		{ID: 17, Name: "Mairie de Brest", Lat: 48.3904, Lng: -4.4861, Dependency: 77},
		{ID: 18, Name: "Université de Poitiers", Lat: 46.5802, Lng: 0.3404, Dependency: 64},
		{ID: 19, Name: "Lycée Fénelon, Paris", Lat: 48.8529, Lng: 2.3393, Dependency: 95},
		{ID: 20, Name: "IUT de Lannion", Lat: 48.7321, Lng: -3.4589, Dependency: 58},
		{ID: 21, Name: "Mairie de Dijon", Lat: 47.3220, Lng: 5.0415, Dependency: 81},
		{ID: 22, Name: "Université d'Angers", Lat: 47.4784, Lng: -0.5632, Dependency: 67},
		{ID: 23, Name: "Collège Sévigné, Tourcoing", Lat: 50.7200, Lng: 3.1600, Dependency: 73},
		{ID: 24, Name: "Mairie de Limoges", Lat: 45.8315, Lng: 1.2578, Dependency: 76},
		{ID: 25, Name: "Université de Clermont-Ferrand", Lat: 45.7772, Lng: 3.0870, Dependency: 69},
	}
}
