package passphrase

// wordlist is a fixed list of 256 short, common, unambiguous English
// words. Its length is a power of two so uniform draws divide evenly.
var wordlist = []string{
	"acorn", "alarm", "amber", "anchor", "apple", "april", "arrow", "atlas",
	"autumn", "bacon", "badge", "bamboo", "banjo", "barrel", "basket", "beach",
	"beacon", "berry", "birch", "bison", "blade", "blanket", "blossom", "bolt",
	"bonfire", "bottle", "branch", "brass", "breeze", "brick", "bridge", "bronze",
	"brook", "bubble", "bucket", "butter", "cabin", "cactus", "camera", "candle",
	"canoe", "canyon", "carpet", "castle", "cedar", "cello", "chalk", "cherry",
	"chess", "chimney", "cider", "cinder", "circle", "clover", "cobalt", "coconut",
	"comet", "compass", "copper", "coral", "cotton", "cradle", "crater", "cricket",
	"crystal", "daisy", "dawn", "delta", "denim", "desert", "dolphin", "domino",
	"donkey", "dragon", "drum", "dune", "eagle", "easel", "echo", "ember",
	"engine", "fable", "falcon", "feather", "fern", "fiddle", "field", "finch",
	"flame", "flint", "flute", "forest", "fossil", "fountain", "fox", "frost",
	"galaxy", "garden", "garlic", "geyser", "ginger", "glacier", "glove", "goose",
	"granite", "grape", "gravel", "grove", "guitar", "hammer", "harbor", "harvest",
	"hazel", "heron", "hickory", "hill", "honey", "horizon", "husk", "iceberg",
	"igloo", "indigo", "iris", "iron", "island", "ivory", "jacket", "jade",
	"jaguar", "jasmine", "jigsaw", "juniper", "kayak", "kettle", "kite", "koala",
	"lagoon", "lantern", "lava", "lemon", "lily", "linen", "lizard", "llama",
	"lobster", "locket", "lotus", "lumber", "magnet", "mango", "maple", "marble",
	"meadow", "melon", "mesa", "meteor", "mint", "mirror", "monsoon", "moose",
	"mosaic", "moss", "moth", "mountain", "mulberry", "mustard", "nebula", "nickel",
	"night", "nutmeg", "oasis", "oatmeal", "ocean", "olive", "onion", "opal",
	"orange", "orchid", "osprey", "otter", "owl", "oyster", "paddle", "pagoda",
	"palm", "panda", "paper", "parrot", "peach", "pebble", "pecan", "pelican",
	"pencil", "penguin", "pepper", "pigeon", "pillow", "pine", "planet", "plum",
	"pocket", "pond", "poplar", "prairie", "prism", "pumpkin", "quail", "quartz",
	"quill", "rabbit", "raccoon", "radish", "raft", "rainbow", "raisin", "raven",
	"reef", "ribbon", "ridge", "river", "robin", "rocket", "rooster", "rose",
	"saddle", "saffron", "sage", "salmon", "sandal", "sapphire", "satchel", "seal",
	"shadow", "shell", "silver", "sketch", "sleet", "slipper", "smoke", "snow",
	"sparrow", "spice", "spider", "spruce", "squash", "stone", "storm", "summit",
	"sunset", "swan", "thistle", "thunder", "tiger", "timber", "trout", "tulip",
}
