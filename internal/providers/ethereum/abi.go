package ethereum

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/crypto"
)

const marketplaceABIJSON = `[
{"inputs":[{"name":"listingId","type":"uint256"}],"name":"buyNFT","outputs":[],"stateMutability":"payable","type":"function"},
{"inputs":[{"name":"nft","type":"address"},{"name":"tokenId","type":"uint256"},{"name":"price","type":"uint256"}],"name":"listNFT","outputs":[],"stateMutability":"nonpayable","type":"function"},
{"inputs":[{"name":"_fee","type":"uint256"}],"name":"setFee","outputs":[],"stateMutability":"nonpayable","type":"function"},
{"inputs":[{"name":"_recipient","type":"address"}],"name":"setFeeRecipient","outputs":[],"stateMutability":"nonpayable","type":"function"},
{"inputs":[],"name":"feeRecipient","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"},
{"inputs":[],"name":"listingCount","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"inputs":[{"name":"","type":"uint256"}],"name":"listings","outputs":[{"name":"seller","type":"address"},{"name":"nft","type":"address"},{"name":"tokenId","type":"uint256"},{"name":"price","type":"uint256"},{"name":"active","type":"bool"}],"stateMutability":"view","type":"function"},
{"inputs":[],"name":"marketplaceFee","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"inputs":[],"name":"owner","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"},
{"anonymous":false,"inputs":[{"indexed":true,"name":"listingId","type":"uint256"},{"indexed":true,"name":"seller","type":"address"},{"indexed":false,"name":"nft","type":"address"},{"indexed":false,"name":"tokenId","type":"uint256"},{"indexed":false,"name":"price","type":"uint256"}],"name":"Listed","type":"event"},
{"anonymous":false,"inputs":[{"indexed":true,"name":"listingId","type":"uint256"},{"indexed":true,"name":"buyer","type":"address"},{"indexed":false,"name":"price","type":"uint256"}],"name":"Sold","type":"event"}
]`

const collectionABIJSON = `[
{"inputs":[{"name":"to","type":"address"},{"name":"tokenId","type":"uint256"}],"name":"approve","outputs":[],"stateMutability":"nonpayable","type":"function"},
{"inputs":[{"name":"to","type":"address"},{"name":"uri","type":"string"}],"name":"mintNFT","outputs":[{"name":"","type":"uint256"}],"stateMutability":"nonpayable","type":"function"},
{"inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"tokenId","type":"uint256"}],"name":"transferFrom","outputs":[],"stateMutability":"nonpayable","type":"function"},
{"inputs":[{"name":"account","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"inputs":[{"name":"tokenId","type":"uint256"}],"name":"getApproved","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"},
{"inputs":[],"name":"name","outputs":[{"name":"","type":"string"}],"stateMutability":"view","type":"function"},
{"inputs":[],"name":"symbol","outputs":[{"name":"","type":"string"}],"stateMutability":"view","type":"function"},
{"inputs":[{"name":"tokenId","type":"uint256"}],"name":"ownerOf","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"},
{"inputs":[{"name":"tokenId","type":"uint256"}],"name":"tokenURI","outputs":[{"name":"","type":"string"}],"stateMutability":"view","type":"function"},
{"inputs":[],"name":"totalMinted","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"anonymous":false,"inputs":[{"indexed":true,"name":"owner","type":"address"},{"indexed":true,"name":"approved","type":"address"},{"indexed":true,"name":"tokenId","type":"uint256"}],"name":"Approval","type":"event"},
{"anonymous":false,"inputs":[{"indexed":true,"name":"to","type":"address"},{"indexed":true,"name":"tokenId","type":"uint256"},{"indexed":false,"name":"tokenURI","type":"string"}],"name":"Minted","type":"event"},
{"anonymous":false,"inputs":[{"indexed":true,"name":"from","type":"address"},{"indexed":true,"name":"to","type":"address"},{"indexed":true,"name":"tokenId","type":"uint256"}],"name":"Transfer","type":"event"}
]`

const offerBookABIJSON = `[
{"inputs":[{"name":"offerId","type":"uint256"}],"name":"acceptOffer","outputs":[],"stateMutability":"nonpayable","type":"function"},
{"inputs":[{"name":"offerId","type":"uint256"}],"name":"cancelOffer","outputs":[],"stateMutability":"nonpayable","type":"function"},
{"inputs":[{"name":"nft","type":"address"},{"name":"tokenId","type":"uint256"}],"name":"makeOffer","outputs":[{"name":"","type":"uint256"}],"stateMutability":"payable","type":"function"},
{"inputs":[],"name":"offerCount","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
{"inputs":[{"name":"","type":"uint256"}],"name":"offers","outputs":[{"name":"offeror","type":"address"},{"name":"nft","type":"address"},{"name":"tokenId","type":"uint256"},{"name":"amount","type":"uint256"},{"name":"active","type":"bool"}],"stateMutability":"view","type":"function"},
{"anonymous":false,"inputs":[{"indexed":true,"name":"offerId","type":"uint256"},{"indexed":true,"name":"offeror","type":"address"},{"indexed":false,"name":"nft","type":"address"},{"indexed":false,"name":"tokenId","type":"uint256"},{"indexed":false,"name":"amount","type":"uint256"}],"name":"OfferMade","type":"event"},
{"anonymous":false,"inputs":[{"indexed":true,"name":"offerId","type":"uint256"},{"indexed":true,"name":"seller","type":"address"},{"indexed":false,"name":"nft","type":"address"},{"indexed":false,"name":"tokenId","type":"uint256"},{"indexed":false,"name":"amount","type":"uint256"}],"name":"OfferAccepted","type":"event"},
{"anonymous":false,"inputs":[{"indexed":true,"name":"offerId","type":"uint256"},{"indexed":true,"name":"offeror","type":"address"}],"name":"OfferCancelled","type":"event"}
]`

var (
	marketplaceABI = mustParseABI(marketplaceABIJSON)
	collectionABI  = mustParseABI(collectionABIJSON)
	offerBookABI   = mustParseABI(offerBookABIJSON)
)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(err)
	}
	return parsed
}

// Event signatures
var (
	mintedEventSignature         = crypto.Keccak256Hash([]byte("Minted(address,uint256,string)"))
	transferEventSignature       = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))
	listedEventSignature         = crypto.Keccak256Hash([]byte("Listed(uint256,address,address,uint256,uint256)"))
	soldEventSignature           = crypto.Keccak256Hash([]byte("Sold(uint256,address,uint256)"))
	offerMadeEventSignature      = crypto.Keccak256Hash([]byte("OfferMade(uint256,address,address,uint256,uint256)"))
	offerAcceptedEventSignature  = crypto.Keccak256Hash([]byte("OfferAccepted(uint256,address,address,uint256,uint256)"))
	offerCancelledEventSignature = crypto.Keccak256Hash([]byte("OfferCancelled(uint256,address)"))
)
