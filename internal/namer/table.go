package namer

import "palettehub/internal/domain"

// baseNames is the built-in table, the CSS extended color keywords.
var baseNames = []domain.ColorName{
	{Name: "Black", Hex: "#000000"},
	{Name: "Navy", Hex: "#000080"},
	{Name: "Dark Blue", Hex: "#00008B"},
	{Name: "Medium Blue", Hex: "#0000CD"},
	{Name: "Blue", Hex: "#0000FF"},
	{Name: "Dark Green", Hex: "#006400"},
	{Name: "Green", Hex: "#008000"},
	{Name: "Teal", Hex: "#008080"},
	{Name: "Dark Cyan", Hex: "#008B8B"},
	{Name: "Deep Sky Blue", Hex: "#00BFFF"},
	{Name: "Dark Turquoise", Hex: "#00CED1"},
	{Name: "Medium Spring Green", Hex: "#00FA9A"},
	{Name: "Lime", Hex: "#00FF00"},
	{Name: "Spring Green", Hex: "#00FF7F"},
	{Name: "Cyan", Hex: "#00FFFF"},
	{Name: "Midnight Blue", Hex: "#191970"},
	{Name: "Dodger Blue", Hex: "#1E90FF"},
	{Name: "Light Sea Green", Hex: "#20B2AA"},
	{Name: "Forest Green", Hex: "#228B22"},
	{Name: "Sea Green", Hex: "#2E8B57"},
	{Name: "Dark Slate Gray", Hex: "#2F4F4F"},
	{Name: "Lime Green", Hex: "#32CD32"},
	{Name: "Medium Sea Green", Hex: "#3CB371"},
	{Name: "Turquoise", Hex: "#40E0D0"},
	{Name: "Royal Blue", Hex: "#4169E1"},
	{Name: "Steel Blue", Hex: "#4682B4"},
	{Name: "Dark Slate Blue", Hex: "#483D8B"},
	{Name: "Medium Turquoise", Hex: "#48D1CC"},
	{Name: "Indigo", Hex: "#4B0082"},
	{Name: "Dark Olive Green", Hex: "#556B2F"},
	{Name: "Cadet Blue", Hex: "#5F9EA0"},
	{Name: "Cornflower Blue", Hex: "#6495ED"},
	{Name: "Medium Aquamarine", Hex: "#66CDAA"},
	{Name: "Dim Gray", Hex: "#696969"},
	{Name: "Slate Blue", Hex: "#6A5ACD"},
	{Name: "Olive Drab", Hex: "#6B8E23"},
	{Name: "Slate Gray", Hex: "#708090"},
	{Name: "Medium Slate Blue", Hex: "#7B68EE"},
	{Name: "Lawn Green", Hex: "#7CFC00"},
	{Name: "Chartreuse", Hex: "#7FFF00"},
	{Name: "Aquamarine", Hex: "#7FFFD4"},
	{Name: "Maroon", Hex: "#800000"},
	{Name: "Purple", Hex: "#800080"},
	{Name: "Olive", Hex: "#808000"},
	{Name: "Gray", Hex: "#808080"},
	{Name: "Sky Blue", Hex: "#87CEEB"},
	{Name: "Light Sky Blue", Hex: "#87CEFA"},
	{Name: "Blue Violet", Hex: "#8A2BE2"},
	{Name: "Dark Red", Hex: "#8B0000"},
	{Name: "Dark Magenta", Hex: "#8B008B"},
	{Name: "Saddle Brown", Hex: "#8B4513"},
	{Name: "Dark Sea Green", Hex: "#8FBC8F"},
	{Name: "Light Green", Hex: "#90EE90"},
	{Name: "Medium Purple", Hex: "#9370DB"},
	{Name: "Dark Violet", Hex: "#9400D3"},
	{Name: "Pale Green", Hex: "#98FB98"},
	{Name: "Dark Orchid", Hex: "#9932CC"},
	{Name: "Yellow Green", Hex: "#9ACD32"},
	{Name: "Sienna", Hex: "#A0522D"},
	{Name: "Brown", Hex: "#A52A2A"},
	{Name: "Dark Gray", Hex: "#A9A9A9"},
	{Name: "Light Blue", Hex: "#ADD8E6"},
	{Name: "Green Yellow", Hex: "#ADFF2F"},
	{Name: "Pale Turquoise", Hex: "#AFEEEE"},
	{Name: "Light Steel Blue", Hex: "#B0C4DE"},
	{Name: "Powder Blue", Hex: "#B0E0E6"},
	{Name: "Firebrick", Hex: "#B22222"},
	{Name: "Dark Goldenrod", Hex: "#B8860B"},
	{Name: "Medium Orchid", Hex: "#BA55D3"},
	{Name: "Rosy Brown", Hex: "#BC8F8F"},
	{Name: "Dark Khaki", Hex: "#BDB76B"},
	{Name: "Silver", Hex: "#C0C0C0"},
	{Name: "Medium Violet Red", Hex: "#C71585"},
	{Name: "Indian Red", Hex: "#CD5C5C"},
	{Name: "Peru", Hex: "#CD853F"},
	{Name: "Chocolate", Hex: "#D2691E"},
	{Name: "Tan", Hex: "#D2B48C"},
	{Name: "Light Gray", Hex: "#D3D3D3"},
	{Name: "Thistle", Hex: "#D8BFD8"},
	{Name: "Orchid", Hex: "#DA70D6"},
	{Name: "Goldenrod", Hex: "#DAA520"},
	{Name: "Pale Violet Red", Hex: "#DB7093"},
	{Name: "Crimson", Hex: "#DC143C"},
	{Name: "Gainsboro", Hex: "#DCDCDC"},
	{Name: "Plum", Hex: "#DDA0DD"},
	{Name: "Burlywood", Hex: "#DEB887"},
	{Name: "Light Cyan", Hex: "#E0FFFF"},
	{Name: "Lavender", Hex: "#E6E6FA"},
	{Name: "Dark Salmon", Hex: "#E9967A"},
	{Name: "Violet", Hex: "#EE82EE"},
	{Name: "Pale Goldenrod", Hex: "#EEE8AA"},
	{Name: "Light Coral", Hex: "#F08080"},
	{Name: "Khaki", Hex: "#F0E68C"},
	{Name: "Alice Blue", Hex: "#F0F8FF"},
	{Name: "Honeydew", Hex: "#F0FFF0"},
	{Name: "Azure", Hex: "#F0FFFF"},
	{Name: "Sandy Brown", Hex: "#F4A460"},
	{Name: "Wheat", Hex: "#F5DEB3"},
	{Name: "Beige", Hex: "#F5F5DC"},
	{Name: "White Smoke", Hex: "#F5F5F5"},
	{Name: "Mint Cream", Hex: "#F5FFFA"},
	{Name: "Ghost White", Hex: "#F8F8FF"},
	{Name: "Salmon", Hex: "#FA8072"},
	{Name: "Antique White", Hex: "#FAEBD7"},
	{Name: "Linen", Hex: "#FAF0E6"},
	{Name: "Light Goldenrod Yellow", Hex: "#FAFAD2"},
	{Name: "Old Lace", Hex: "#FDF5E6"},
	{Name: "Red", Hex: "#FF0000"},
	{Name: "Magenta", Hex: "#FF00FF"},
	{Name: "Deep Pink", Hex: "#FF1493"},
	{Name: "Orange Red", Hex: "#FF4500"},
	{Name: "Tomato", Hex: "#FF6347"},
	{Name: "Hot Pink", Hex: "#FF69B4"},
	{Name: "Coral", Hex: "#FF7F50"},
	{Name: "Dark Orange", Hex: "#FF8C00"},
	{Name: "Light Salmon", Hex: "#FFA07A"},
	{Name: "Orange", Hex: "#FFA500"},
	{Name: "Light Pink", Hex: "#FFB6C1"},
	{Name: "Pink", Hex: "#FFC0CB"},
	{Name: "Gold", Hex: "#FFD700"},
	{Name: "Peach Puff", Hex: "#FFDAB9"},
	{Name: "Navajo White", Hex: "#FFDEAD"},
	{Name: "Moccasin", Hex: "#FFE4B5"},
	{Name: "Bisque", Hex: "#FFE4C4"},
	{Name: "Misty Rose", Hex: "#FFE4E1"},
	{Name: "Blanched Almond", Hex: "#FFEBCD"},
	{Name: "Papaya Whip", Hex: "#FFEFD5"},
	{Name: "Lavender Blush", Hex: "#FFF0F5"},
	{Name: "Seashell", Hex: "#FFF5EE"},
	{Name: "Cornsilk", Hex: "#FFF8DC"},
	{Name: "Lemon Chiffon", Hex: "#FFFACD"},
	{Name: "Floral White", Hex: "#FFFAF0"},
	{Name: "Snow", Hex: "#FFFAFA"},
	{Name: "Yellow", Hex: "#FFFF00"},
	{Name: "Light Yellow", Hex: "#FFFFE0"},
	{Name: "Ivory", Hex: "#FFFFF0"},
	{Name: "White", Hex: "#FFFFFF"},
}
