package unity

import (
	"context"
	"strings"
	"time"

	"github.com/trsv-dev/unity-scene-client/internal/errs"
	"github.com/trsv-dev/unity-scene-client/internal/logger"
	"github.com/trsv-dev/unity-scene-client/internal/transport"
)

// Свойства Transform, значения которых приводятся к Vector3 (сравнение в нижнем регистре).
var transformVectorProperties = map[string]struct{}{
	"position":    {},
	"localscale":  {},
	"rotation":    {},
	"eulerangles": {},
}

// Client Клиент Unity MCP сервера. Каждая операция - один запрос к серверу,
// кроме AddComponent для типов *Mesh (до трёх запросов).
// Клиент не хранит изменяемого состояния, но и не синхронизирует конкурентные вызовы сам.
type Client struct {
	transport transport.Transport
	endpoint  string
}

// NewClient Конструктор клиента поверх произвольного транспорта.
func NewClient(t transport.Transport) *Client {
	return &Client{transport: t}
}

// NewHTTPClient Конструктор клиента, отправляющего команды по HTTP на endpoint.
func NewHTTPClient(endpoint string, timeout time.Duration) *Client {
	t := transport.NewHTTPTransport(endpoint, timeout)

	return &Client{
		transport: t,
		endpoint:  t.Endpoint(),
	}
}

// Endpoint Адрес сервера (пустой для клиента поверх произвольного транспорта).
func (c *Client) Endpoint() string {
	return c.endpoint
}

// CreateGameObject Создание GameObject в активной сцене. parent необязателен.
func (c *Client) CreateGameObject(ctx context.Context, name, parent string) (Response, error) {
	return c.call(ctx, CmdCreateGameObject, Args{
		ArgObjectName: name,
		ArgParentName: parent,
	})
}

// GetAllScenes Список путей ко всем сценам проекта.
func (c *Client) GetAllScenes(ctx context.Context) (Response, error) {
	return c.call(ctx, CmdGetAllScenes, nil)
}

// GetAllPrefabs Список всех префабов проекта.
func (c *Client) GetAllPrefabs(ctx context.Context) (Response, error) {
	return c.call(ctx, CmdGetAllPrefabs, nil)
}

// GetAllGameObjectsInScene Список GameObject активной сцены.
func (c *Client) GetAllGameObjectsInScene(ctx context.Context) (Response, error) {
	return c.call(ctx, CmdGetAllGameObjectsInScene, nil)
}

// AddComponent Добавление компонента к GameObject.
// Тип с суффиксом "Mesh" (CubeMesh, SphereMesh, ...) разворачивается в MeshFilter + MeshRenderer
// и установку примитивного меша, см. addMeshComponent.
func (c *Client) AddComponent(ctx context.Context, object, componentType string) (Response, error) {
	if isMeshShortcut(componentType) {
		return c.addMeshComponent(ctx, object, componentType)
	}

	return c.addComponent(ctx, object, componentType)
}

func (c *Client) addComponent(ctx context.Context, object, componentType string) (Response, error) {
	return c.call(ctx, CmdAddComponent, Args{
		ArgObjectName:    object,
		ArgComponentType: componentType,
	})
}

// CreateScriptAsset Создание C# скрипта. folder необязателен (на сервере по умолчанию Assets/MCP/Scripts).
func (c *Client) CreateScriptAsset(ctx context.Context, name, content, folder string) (Response, error) {
	return c.call(ctx, CmdCreateScriptAsset, Args{
		ArgScriptName:    name,
		ArgScriptContent: content,
		ArgFolderPath:    folder,
	})
}

// SetComponentProperty Установка свойства компонента.
// Для Transform свойство "scale" (в любом регистре) отправляется как "localScale",
// а значения position/localScale/rotation/eulerAngles приводятся к строке "x,y,z".
// Для остальных компонентов к "x,y,z" приводится любое значение из трёх элементов.
func (c *Client) SetComponentProperty(ctx context.Context, object, component, property string, value any) (Response, error) {
	property = propertyAlias(component, property)

	return c.call(ctx, CmdSetComponentProperty, Args{
		ArgObjectName:    object,
		ArgComponentType: component,
		ArgPropertyName:  property,
		ArgValue:         coercePropertyValue(component, property, value),
	})
}

// InstantiatePrefab Создание экземпляра префаба в текущей сцене.
func (c *Client) InstantiatePrefab(ctx context.Context, prefabPath string) (Response, error) {
	return c.call(ctx, CmdInstantiatePrefab, Args{ArgPrefabPath: prefabPath})
}

// FindGameObjectsByTag Поиск GameObject по тегу.
func (c *Client) FindGameObjectsByTag(ctx context.Context, tag string) (Response, error) {
	return c.call(ctx, CmdFindGameObjectsByTag, Args{ArgTag: tag})
}

// GetAllComponents Список компонентов GameObject.
func (c *Client) GetAllComponents(ctx context.Context, object string) (Response, error) {
	return c.call(ctx, CmdGetAllComponents, Args{ArgObjectName: object})
}

// RemoveComponent Удаление компонента с GameObject.
func (c *Client) RemoveComponent(ctx context.Context, object, component string) (Response, error) {
	return c.call(ctx, CmdRemoveComponent, Args{
		ArgObjectName:    object,
		ArgComponentName: component,
	})
}

// DeleteGameObject Удаление GameObject со сцены.
func (c *Client) DeleteGameObject(ctx context.Context, object string) (Response, error) {
	return c.call(ctx, CmdDeleteGameObject, Args{ArgObjectName: object})
}

// Send Отправка произвольной команды из словаря протокола.
func (c *Client) Send(ctx context.Context, cmd Command, args Args) (Response, error) {
	return c.call(ctx, cmd, args)
}

func (c *Client) call(ctx context.Context, cmd Command, args Args) (Response, error) {
	envelope, err := NewEnvelope(cmd, args)
	if err != nil {
		return Response{}, errs.NewErrRequestFailed(string(cmd), err)
	}

	body, err := envelope.Marshal()
	if err != nil {
		return Response{}, errs.NewErrRequestFailed(string(cmd), err)
	}

	log := logger.Get()
	log.Debug("Отправка команды серверу движка", logger.String("command", string(cmd)))

	respBody, err := c.transport.Send(ctx, body)
	if err != nil {
		log.Error("Запрос к серверу движка завершился ошибкой",
			logger.String("command", string(cmd)),
			logger.Err(err))
		return Response{}, errs.NewErrRequestFailed(string(cmd), err)
	}

	resp, err := decodeResponse(respBody)
	if err != nil {
		log.Error("Не удалось декодировать ответ сервера движка",
			logger.String("command", string(cmd)),
			logger.Err(err))
		return Response{}, errs.NewErrRequestFailed(string(cmd), err)
	}

	return resp, nil
}

func propertyAlias(component, property string) string {
	if component == "Transform" && strings.EqualFold(property, "scale") {
		return "localScale"
	}
	return property
}

func coercePropertyValue(component, property string, value any) any {
	if component == "Transform" {
		if _, ok := transformVectorProperties[strings.ToLower(property)]; ok {
			return FormatVector3(value)
		}
	}

	if IsVectorValue(value) {
		return FormatVector3(value)
	}

	return value
}
