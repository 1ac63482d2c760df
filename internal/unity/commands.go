package unity

// Command Имя команды протокола Unity MCP сервера.
type Command string

const (
	CmdCreateGameObject         Command = "create_gameobject"
	CmdGetAllScenes             Command = "get_all_scenes"
	CmdGetAllPrefabs            Command = "get_all_prefabs"
	CmdGetAllGameObjectsInScene Command = "get_all_gameobjects_in_scene"
	CmdAddComponent             Command = "add_component"
	CmdCreateScriptAsset        Command = "create_script_asset"
	CmdSetComponentProperty     Command = "set_component_property"
	CmdInstantiatePrefab        Command = "instantiate_prefab"
	CmdFindGameObjectsByTag     Command = "find_gameobjects_by_tag"
	CmdGetAllComponents         Command = "get_all_components"
	CmdRemoveComponent          Command = "remove_component"
	CmdDeleteGameObject         Command = "delete_gameobject"
)

// Arg Логический аргумент операции клиента. Имя ключа в parameters зависит от команды.
type Arg int

const (
	ArgObjectName Arg = iota
	ArgParentName
	ArgComponentType
	ArgComponentName
	ArgScriptName
	ArgScriptContent
	ArgFolderPath
	ArgPropertyName
	ArgValue
	ArgPrefabPath
	ArgTag
)

var argNames = map[Arg]string{
	ArgObjectName:    "object name",
	ArgParentName:    "parent name",
	ArgComponentType: "component type",
	ArgComponentName: "component name",
	ArgScriptName:    "script name",
	ArgScriptContent: "script content",
	ArgFolderPath:    "folder path",
	ArgPropertyName:  "property name",
	ArgValue:         "value",
	ArgPrefabPath:    "prefab path",
	ArgTag:           "tag",
}

func (a Arg) String() string {
	if name, ok := argNames[a]; ok {
		return name
	}
	return "unknown"
}

// Param Описание одного ключа parameters: какой аргумент и под каким именем уходит на сервер.
type Param struct {
	Arg      Arg
	Key      string
	Optional bool
}

// Таблица ключей parameters для каждой команды. Имена ключей различаются между командами
// (objectName, gameObjectName, name) и должны совпадать с тем, что ожидает сервер движка.
var schemas = map[Command][]Param{
	CmdCreateGameObject: {
		{Arg: ArgObjectName, Key: "objectName"},
		{Arg: ArgParentName, Key: "parentName", Optional: true},
	},
	CmdGetAllScenes:             {},
	CmdGetAllPrefabs:            {},
	CmdGetAllGameObjectsInScene: {},
	CmdAddComponent: {
		{Arg: ArgObjectName, Key: "gameObjectName"},
		{Arg: ArgComponentType, Key: "componentTypeName"},
	},
	CmdCreateScriptAsset: {
		{Arg: ArgScriptName, Key: "scriptName"},
		{Arg: ArgScriptContent, Key: "scriptContent"},
		{Arg: ArgFolderPath, Key: "folderPath", Optional: true},
	},
	CmdSetComponentProperty: {
		{Arg: ArgObjectName, Key: "gameObjectName"},
		{Arg: ArgComponentType, Key: "componentType"},
		{Arg: ArgPropertyName, Key: "propertyName"},
		{Arg: ArgValue, Key: "value"},
	},
	CmdInstantiatePrefab: {
		{Arg: ArgPrefabPath, Key: "prefabPath"},
	},
	CmdFindGameObjectsByTag: {
		{Arg: ArgTag, Key: "tag"},
	},
	CmdGetAllComponents: {
		{Arg: ArgObjectName, Key: "gameObjectName"},
	},
	CmdRemoveComponent: {
		{Arg: ArgObjectName, Key: "gameObjectName"},
		{Arg: ArgComponentName, Key: "componentName"},
	},
	CmdDeleteGameObject: {
		{Arg: ArgObjectName, Key: "name"},
	},
}

// порядок команд для вывода
var commandOrder = []Command{
	CmdCreateGameObject,
	CmdGetAllScenes,
	CmdGetAllPrefabs,
	CmdGetAllGameObjectsInScene,
	CmdAddComponent,
	CmdCreateScriptAsset,
	CmdSetComponentProperty,
	CmdInstantiatePrefab,
	CmdFindGameObjectsByTag,
	CmdGetAllComponents,
	CmdRemoveComponent,
	CmdDeleteGameObject,
}

// Commands Список всех поддерживаемых команд.
func Commands() []Command {
	out := make([]Command, len(commandOrder))
	copy(out, commandOrder)
	return out
}

// Schema Ключи parameters команды. ok == false для неизвестной команды.
func Schema(cmd Command) ([]Param, bool) {
	params, ok := schemas[cmd]
	if !ok {
		return nil, false
	}

	out := make([]Param, len(params))
	copy(out, params)
	return out, true
}
