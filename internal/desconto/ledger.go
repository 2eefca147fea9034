// Package desconto mantém os lançamentos de desconto e ajuste de um contrato
// (pontualidade, benfeitorias, fundos, honorários) e o total acumulado.
package desconto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Tipo identifica a natureza do lançamento. O catálogo é fechado.
type Tipo string

const (
	TipoPontualidade       Tipo = "pontualidade"
	TipoBenfeitoria        Tipo = "benfeitoria"
	TipoFundoObras         Tipo = "fundo_obras"
	TipoFundoReserva       Tipo = "fundo_reserva"
	TipoFundoIptu          Tipo = "fundo_iptu"
	TipoFundoOutros        Tipo = "fundo_outros"
	TipoHonorarioAdvogados Tipo = "honorario_advogados"
	TipoBoletoAdvogados    Tipo = "boleto_advogados"
)

// rotulosPadrao são os rótulos de catálogo usados quando o chamador não envia
// um rótulo próprio.
var rotulosPadrao = map[Tipo]string{
	TipoPontualidade:       "Desconto Pontualidade",
	TipoBenfeitoria:        "Desconto Benfeitoria",
	TipoFundoObras:         "Fundo de Obras",
	TipoFundoReserva:       "Fundo de Reserva",
	TipoFundoIptu:          "Fundo de IPTU",
	TipoFundoOutros:        "Outros Fundos",
	TipoHonorarioAdvogados: "Honorários de Advogados",
	TipoBoletoAdvogados:    "Boleto de Advogados",
}

// TipoValido informa se o tipo pertence ao catálogo.
func TipoValido(t Tipo) bool {
	_, ok := rotulosPadrao[t]
	return ok
}

// Item é um lançamento do ledger. Para benfeitorias o rótulo exibido é sempre
// derivado da posição na lista ("Desconto Benfeitoria N"), ignorando qualquer
// rótulo enviado pelo chamador.
type Item struct {
	ID     int64           `json:"id"`
	Tipo   Tipo            `json:"tipo"`
	Rotulo string          `json:"rotulo"`
	Valor  decimal.Decimal `json:"valor"`
}

// Ledger acumula os lançamentos de um contrato na ordem de inclusão.
type Ledger struct {
	itens    []Item
	ultimoID int64
}

func NovoLedger() *Ledger {
	return &Ledger{}
}

// proximoID gera um identificador crescente baseado no relógio. Se duas
// inclusões caírem no mesmo milissegundo, avança a partir do último id.
func (l *Ledger) proximoID() int64 {
	id := time.Now().UnixMilli()
	if id <= l.ultimoID {
		id = l.ultimoID + 1
	}
	l.ultimoID = id
	return id
}

// Adicionar inclui um lançamento. Recusa tipo fora do catálogo ou valor não
// positivo, devolvendo ok=false sem alterar o ledger. O item retornado já
// carrega o rótulo como será exibido.
func (l *Ledger) Adicionar(tipo Tipo, rotulo string, valor decimal.Decimal) (Item, bool) {
	if !TipoValido(tipo) || valor.LessThanOrEqual(decimal.Zero) {
		return Item{}, false
	}
	if rotulo == "" {
		rotulo = rotulosPadrao[tipo]
	}
	item := Item{ID: l.proximoID(), Tipo: tipo, Rotulo: rotulo, Valor: valor}
	l.itens = append(l.itens, item)

	visiveis := l.Itens()
	return visiveis[len(visiveis)-1], true
}

// Remover exclui o lançamento com o id informado. As benfeitorias
// remanescentes são renumeradas de graça, já que o rótulo delas é derivado da
// posição em Itens.
func (l *Ledger) Remover(id int64) bool {
	for i, item := range l.itens {
		if item.ID == id {
			l.itens = append(l.itens[:i], l.itens[i+1:]...)
			return true
		}
	}
	return false
}

// AtualizarValor troca o valor de um lançamento existente. A positividade só
// é exigida na inclusão; aqui o valor é aceito como veio.
func (l *Ledger) AtualizarValor(id int64, valor decimal.Decimal) bool {
	for i := range l.itens {
		if l.itens[i].ID == id {
			l.itens[i].Valor = valor
			return true
		}
	}
	return false
}

// Itens devolve os lançamentos na ordem atual, com os rótulos de benfeitoria
// numerados pela posição ("Desconto Benfeitoria 1..k").
func (l *Ledger) Itens() []Item {
	visiveis := make([]Item, len(l.itens))
	copy(visiveis, l.itens)

	n := 0
	for i := range visiveis {
		if visiveis[i].Tipo == TipoBenfeitoria {
			n++
			visiveis[i].Rotulo = fmt.Sprintf("Desconto Benfeitoria %d", n)
		}
	}
	return visiveis
}

// Total soma o valor de todos os lançamentos.
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range l.itens {
		total = total.Add(item.Valor)
	}
	return total
}

// Tamanho informa quantos lançamentos existem.
func (l *Ledger) Tamanho() int {
	return len(l.itens)
}
