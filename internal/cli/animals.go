package cli

import (
	"context"
	"os"

	"github.com/shelterdesk/portal/internal/models"
)

// AddAnimal interactively registers a new animal.
func (a *App) AddAnimal(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Animal name", os.Stdout)
	if err != nil {
		return err
	}
	speciesID, err := getSimpleText(a.reader, "Species ID", os.Stdout)
	if err != nil {
		return err
	}
	breedID, err := getSimpleText(a.reader, "Breed ID (optional)", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}

	animal, err := a.animals.Register(ctx, models.NewAnimal{
		Name:        name,
		SpeciesID:   speciesID,
		BreedID:     breedID,
		Description: description,
	})
	if err != nil {
		printlnFn("Could not register animal:", err.Error())
		return err
	}

	printlnFn("Registered:", animal.ID, animal.Name)
	return nil
}

// SetStatus updates an animal's adoption status.
func (a *App) SetStatus(ctx context.Context, args []string) error {
	if len(args) < 2 {
		printlnFn("Usage: status <animalID> <Available|Reserved|Adopted>")
		return nil
	}

	animal, err := a.animals.SetStatus(ctx, args[0], args[1])
	if err != nil {
		printlnFn("Could not update status:", err.Error())
		return err
	}

	printlnFn("Updated:", animal.Name, "is now", animal.Status)
	return nil
}
