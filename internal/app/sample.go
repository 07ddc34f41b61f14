package app

import "github.com/guttosm/postbox/internal/domain/model"

// SampleMail returns the demonstration mail set. Two items have no
// destination and are refused by the box.
func SampleMail() []model.Mail {
	return []model.Mail{
		model.NewLetter(200, true, "Chemin des Acacias 28, 1009 Pully", "A3"),
		model.NewLetter(800, false, "", "A4"),
		model.NewAdvertisement(1500, true, "Les Moilles 13A, 1913 Saillon"),
		model.NewAdvertisement(3000, false, ""),
		model.NewParcel(5000, true, "Grand rue 18, 1950 Sion", 30),
		model.NewParcel(3000, true, "Chemin des fleurs 48, 2800 Delemont", 70),
	}
}
