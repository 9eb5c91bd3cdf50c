package ui

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mokiat/lacking/game"
	"github.com/mokiat/lacking/util/async"

	"github.com/nobonobo/mesh-scene/host/resources"
	"github.com/nobonobo/mesh-scene/schema"
)

// FetchParams reads the initial control panel values. A path given on the
// command line takes precedence over the embedded file. Browser builds then
// apply any values present in the page URL.
func FetchParams(path string, target *schema.Params) async.Operation {
	return async.NewFuncOperation(func() error {
		data, err := readParamsFile(path)
		if err != nil {
			log.Printf("ERROR: failed to read params file: %v", err)
			return err
		}
		params, err := schema.ParseParams(data)
		if err != nil {
			log.Printf("ERROR: failed to parse params file: %v", err)
			return err
		}
		*target = schema.ParamsFromQuery(QueryParams(), params)
		return nil
	})
}

func readParamsFile(path string) ([]byte, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		return data, nil
	}
	file, err := resources.UI.Open(resources.ParamsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", resources.ParamsFile, err)
	}
	defer file.Close()
	return io.ReadAll(file)
}

func LoadSceneData(resourceSet *game.ResourceSet, paramsPath string) async.Promise[*SceneData] {
	var data SceneData
	return async.InjectionPromise(async.JoinOperations(
		resourceSet.FetchResource("backdrop.dat", &data.Backdrop),
		FetchParams(paramsPath, &data.Params),
	), &data)
}

// Temporary global storage for data across views
var sceneData *SceneData
