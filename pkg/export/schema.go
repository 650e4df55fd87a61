package export

// projectSchema is the JSON Schema the project document must satisfy before
// it is decoded. Validation keeps a malformed upload from partially mutating
// the in-memory model: loading is all-or-nothing.
const projectSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "minItems": 1,
  "items": {
    "type": "object",
    "required": ["id", "rooms"],
    "properties": {
      "id": {"type": "string"},
      "name": {"type": "string"},
      "rooms": {
        "type": "array",
        "items": {
          "type": "object",
          "required": ["id", "vertices"],
          "properties": {
            "id": {"type": "string"},
            "name": {"type": "string"},
            "vertices": {
              "type": "array",
              "items": {
                "type": "object",
                "required": ["x", "y"],
                "properties": {
                  "x": {"type": "number"},
                  "y": {"type": "number"}
                }
              }
            },
            "wallTypes": {
              "type": "array",
              "items": {"enum": ["internalWall", "externalWall"]}
            },
            "windows": {
              "type": "array",
              "items": {"$ref": "#/definitions/attachment"}
            },
            "doors": {
              "type": "array",
              "items": {"$ref": "#/definitions/attachment"}
            },
            "stairs": {
              "type": "array",
              "items": {
                "type": "object",
                "required": ["id", "center"],
                "properties": {
                  "id": {"type": "string"},
                  "center": {"type": "object"},
                  "length": {"type": "number"},
                  "width": {"type": "number"},
                  "steps": {"type": "integer"},
                  "up": {"type": "boolean"},
                  "rotation": {"type": "number"}
                }
              }
            },
            "fillColor": {
              "type": "object",
              "properties": {
                "_h": {"type": "number"},
                "_s": {"type": "number"},
                "_b": {"type": "number"},
                "_a": {"type": "number"}
              }
            }
          }
        }
      }
    }
  },
  "definitions": {
    "attachment": {
      "type": "object",
      "required": ["id", "wallIndex", "offset", "length"],
      "properties": {
        "id": {"type": "string"},
        "wallIndex": {"type": "integer", "minimum": 0},
        "offset": {"type": "number", "minimum": 0, "maximum": 1},
        "length": {"type": "number", "exclusiveMinimum": 0},
        "type": {"type": "string"}
      }
    }
  }
}`
