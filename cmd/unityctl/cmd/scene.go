package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/trsv-dev/unity-scene-client/internal/unity"
)

// runAndPrint Выполнение операции клиента и печать ответа.
func runAndPrint(cmd *cobra.Command, op func() (unity.Response, error)) error {
	resp, err := op()
	if err != nil {
		return err
	}

	return printResponse(cmd.OutOrStdout(), resp)
}

func (a *app) createCmd() *cobra.Command {
	var parent string

	c := &cobra.Command{
		Use:   "create <name>",
		Short: "Создать GameObject в активной сцене",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAndPrint(cmd, func() (unity.Response, error) {
				return a.client.CreateGameObject(cmd.Context(), args[0], parent)
			})
		},
	}
	c.Flags().StringVarP(&parent, "parent", "p", "", "имя родительского GameObject")

	return c
}

func (a *app) scenesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenes",
		Short: "Список сцен проекта",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAndPrint(cmd, func() (unity.Response, error) {
				return a.client.GetAllScenes(cmd.Context())
			})
		},
	}
}

func (a *app) prefabsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prefabs",
		Short: "Список префабов проекта",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAndPrint(cmd, func() (unity.Response, error) {
				return a.client.GetAllPrefabs(cmd.Context())
			})
		},
	}
}

func (a *app) objectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "objects",
		Short: "Список GameObject активной сцены",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAndPrint(cmd, func() (unity.Response, error) {
				return a.client.GetAllGameObjectsInScene(cmd.Context())
			})
		},
	}
}

func (a *app) addComponentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-component <object> <type>",
		Short: "Добавить компонент к GameObject",
		Long: `Добавляет компонент к GameObject.

Типы с суффиксом Mesh (CubeMesh, SphereMesh, CylinderMesh, CapsuleMesh, PlaneMesh)
добавляют MeshFilter и MeshRenderer и назначают встроенный меш примитива.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAndPrint(cmd, func() (unity.Response, error) {
				return a.client.AddComponent(cmd.Context(), args[0], args[1])
			})
		},
	}
}

func (a *app) createScriptCmd() *cobra.Command {
	var folder string

	c := &cobra.Command{
		Use:   "create-script <name> <file|->",
		Short: "Создать C# скрипт из файла или stdin",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readScript(cmd.InOrStdin(), args[1])
			if err != nil {
				return err
			}

			return runAndPrint(cmd, func() (unity.Response, error) {
				return a.client.CreateScriptAsset(cmd.Context(), args[0], content, folder)
			})
		},
	}
	c.Flags().StringVarP(&folder, "folder", "f", "", "папка для скрипта (на сервере по умолчанию Assets/MCP/Scripts)")

	return c
}

func (a *app) setPropertyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-property <object> <component> <property> <value>",
		Short: "Установить свойство компонента",
		Long: `Устанавливает свойство компонента.

Значение разбирается как JSON (5, true, "text", [1,2,3]); если это не JSON -
передаётся строкой. Для Transform значения position/scale/rotation можно
передавать как "1,2,3" или "(1, 2, 3)".`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAndPrint(cmd, func() (unity.Response, error) {
				return a.client.SetComponentProperty(cmd.Context(), args[0], args[1], args[2], parseValue(args[3]))
			})
		},
	}
}

func (a *app) instantiateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "instantiate <prefab-path>",
		Short: "Создать экземпляр префаба",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAndPrint(cmd, func() (unity.Response, error) {
				return a.client.InstantiatePrefab(cmd.Context(), args[0])
			})
		},
	}
}

func (a *app) findByTagCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find-by-tag <tag>",
		Short: "Найти GameObject по тегу",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAndPrint(cmd, func() (unity.Response, error) {
				return a.client.FindGameObjectsByTag(cmd.Context(), args[0])
			})
		},
	}
}

func (a *app) componentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "components <object>",
		Short: "Список компонентов GameObject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAndPrint(cmd, func() (unity.Response, error) {
				return a.client.GetAllComponents(cmd.Context(), args[0])
			})
		},
	}
}

func (a *app) removeComponentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-component <object> <component>",
		Short: "Удалить компонент с GameObject",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAndPrint(cmd, func() (unity.Response, error) {
				return a.client.RemoveComponent(cmd.Context(), args[0], args[1])
			})
		},
	}
}

func (a *app) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <object>",
		Short: "Удалить GameObject со сцены",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAndPrint(cmd, func() (unity.Response, error) {
				return a.client.DeleteGameObject(cmd.Context(), args[0])
			})
		},
	}
}

func (a *app) commandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "Словарь команд протокола и ключи их параметров",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			for _, command := range unity.Commands() {
				params, _ := unity.Schema(command)

				keys := make([]string, 0, len(params))
				for _, p := range params {
					key := p.Key
					if p.Optional {
						key += "?"
					}
					keys = append(keys, key)
				}

				if _, err := fmt.Fprintf(out, "%-30s %s\n", command, strings.Join(keys, ", ")); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

// parseValue Значение свойства из аргумента командной строки: JSON, если разбирается, иначе строка.
func parseValue(raw string) any {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return raw
	}

	if _, err := dec.Token(); err != io.EOF {
		return raw
	}

	return value
}

// readScript Содержимое скрипта из файла или stdin ("-").
func readScript(stdin io.Reader, source string) (string, error) {
	if source == "-" {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stdin); err != nil {
			return "", fmt.Errorf("не удалось прочитать скрипт из stdin: %w", err)
		}
		return buf.String(), nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("не удалось прочитать файл скрипта: %w", err)
	}

	return string(data), nil
}
