package cli

import (
	"fmt"
	"path/filepath"

	"crafto-editor/ds"
	"crafto-editor/save"
	"crafto-editor/savedir"
	"crafto-editor/session"
	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/samber/lo"
)

type (
	ScanEntry struct {
		Field *save.Field `json:"field,omitempty"`
		Error string      `json:"error,omitempty"`
	}
)

func PrintList(dir string) error {
	names, err := savedir.List(dir)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		pterm.Warning.Printfln("No save files in %s", dir)
		return nil
	}
	items := lo.Map(
		names,
		func(name string, _ int) pterm.BulletListItem {
			return pterm.BulletListItem{Level: 0, Text: name}
		},
	)
	return pterm.DefaultBulletList.WithItems(items).Render()
}

func PrintField(path string, asJSON bool) error {
	field, err := save.ReadFile(path)
	if errors.Is(err, save.ErrNotFound) {
		return errors.Wrapf(err, `no editable field in "%s"`, filepath.Base(path))
	}
	if err != nil {
		return err
	}
	if asJSON {
		fmt.Println(ds.DumpJSON(field))
		return nil
	}
	pterm.Info.Printfln("progressionPoints = %.4f (offset %d)", field.Value, field.Offset)
	return nil
}

// SetField locates the field again right before writing, so the offset always
// matches the current contents of path.
func SetField(path string, value float64, backup bool) error {
	if !save.IsAccepted(value) {
		return errors.Errorf("value %v is outside (0, %v]", value, save.MaxExpected)
	}

	s := session.Session{}
	field, err := s.Load(path)
	if err != nil {
		return err
	}
	previous := field.Value
	pterm.Debug.Printfln("located %v at offset %d", previous, field.Offset)

	if backup {
		backupPath, err := save.BackupFile(path)
		if err != nil {
			return err
		}
		pterm.Info.Printfln("Backup written to %s", backupPath)
	}
	if err := s.Save(value); err != nil {
		return err
	}
	pterm.Success.Printfln("Saved %.4f (was %.4f)", value, previous)
	return nil
}

// ScanDir locates the field in every save file of dir, keeping the listing
// order.
func ScanDir(dir string) (*orderedmap.OrderedMap, error) {
	names, err := savedir.List(dir)
	if err != nil {
		return nil, err
	}
	result := orderedmap.New()
	lo.ForEach(
		names,
		func(name string, _ int) {
			field, err := save.ReadFile(filepath.Join(dir, name))
			switch {
			case errors.Is(err, save.ErrNotFound):
				result.Set(name, ScanEntry{Error: save.ErrNotFound.Error()})
			case err != nil:
				result.Set(name, ScanEntry{Error: err.Error()})
			default:
				result.Set(name, ScanEntry{Field: field})
			}
		},
	)
	return result, nil
}

func PrintScan(dir string, asJSON bool) error {
	result, err := ScanDir(dir)
	if err != nil {
		return err
	}
	if asJSON {
		fmt.Println(ds.DumpJSON(result))
		return nil
	}

	data := pterm.TableData{{"File", "Value", "Offset"}}
	for _, name := range result.Keys() {
		value, _ := result.Get(name)
		entry := value.(ScanEntry)
		if entry.Field == nil {
			data = append(data, []string{name, entry.Error, ""})
			continue
		}
		data = append(data, []string{
			name,
			fmt.Sprintf("%.4f", entry.Field.Value),
			fmt.Sprintf("%d", entry.Field.Offset),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
